package deck

import "fmt"

// ContentShapeError reports slide content whose dimensions do not line up:
// a table row with the wrong number of cells, or a chart series with the
// wrong number of values. The offending slide is never appended to the deck.
type ContentShapeError struct {
	Slide  string // slide title
	Detail string // which row or series
	Want   int
	Got    int
}

func (e *ContentShapeError) Error() string {
	return fmt.Sprintf("slide %q: %s has %d values, want %d", e.Slide, e.Detail, e.Got, e.Want)
}

func rowLabel(i int) string {
	return fmt.Sprintf("row %d", i+1)
}
