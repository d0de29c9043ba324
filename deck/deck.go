// Package deck holds the in-memory slide deck model. A Deck is built by a
// single caller through the Add* constructors and is append-only: slides are
// validated when they are added and never mutated or removed afterwards.
// Rendering to an output format is the export package's job.
package deck

// SlideKind discriminates the five slide shapes a deck can contain.
type SlideKind int

const (
	KindTitle SlideKind = iota
	KindBulleted
	KindTwoColumn
	KindTable
	KindChart
)

// ChartKind selects how a chart slide plots its series.
type ChartKind int

const (
	ChartBar ChartKind = iota
	ChartLine
	ChartPie
)

// Series is one named sequence of values plotted against a chart's
// categories. Series order is the legend order.
type Series struct {
	Name   string
	Values []float64
}

// Slide is one validated slide. Only the fields for its Kind are set.
type Slide struct {
	Kind     SlideKind
	Title    string
	Subtitle string // title slides; empty means no subtitle

	Items []string // bulleted slides; "" renders as a blank spacing line

	Left  []string // two-column slides
	Right []string

	Headers []string // table slides
	Rows    [][]string

	Categories []string // chart slides
	Series     []Series
	Chart      ChartKind
}

// Deck is an ordered sequence of slides plus the page dimensions they are
// laid out against.
type Deck struct {
	slides []Slide
	width  float64 // inches
	height float64
}

// Page dimensions of the workshop deck, in inches (4:3).
const (
	PageWidth  = 10.0
	PageHeight = 7.5
)

// New returns an empty deck with the standard page dimensions.
func New() *Deck {
	return &Deck{width: PageWidth, height: PageHeight}
}

// Width returns the page width in inches.
func (d *Deck) Width() float64 { return d.width }

// Height returns the page height in inches.
func (d *Deck) Height() float64 { return d.height }

// SlideCount returns the number of slides added so far.
func (d *Deck) SlideCount() int { return len(d.slides) }

// Slides returns the slides in presentation order. The returned slice is
// shared with the deck and must not be modified.
func (d *Deck) Slides() []Slide { return d.slides }

// AddTitleSlide appends a slide with a large bold heading and an optional
// subtitle. An empty subtitle is omitted from the rendered slide.
func (d *Deck) AddTitleSlide(title, subtitle string) {
	d.slides = append(d.slides, Slide{
		Kind:     KindTitle,
		Title:    title,
		Subtitle: subtitle,
	})
}

// AddBulletedSlide appends a slide whose body lists items in order, one per
// line. Empty strings are kept as blank spacing lines; an empty list produces
// a slide with an empty body.
func (d *Deck) AddBulletedSlide(title string, items []string) {
	d.slides = append(d.slides, Slide{
		Kind:  KindBulleted,
		Title: title,
		Items: copyStrings(items),
	})
}

// AddTwoColumnSlide appends a slide with two independently laid-out text
// columns, each rendering its list top to bottom.
func (d *Deck) AddTwoColumnSlide(title string, left, right []string) {
	d.slides = append(d.slides, Slide{
		Kind:  KindTwoColumn,
		Title: title,
		Left:  copyStrings(left),
		Right: copyStrings(right),
	})
}

// AddTableSlide appends a slide containing a grid whose first row is the
// header. Every row must have exactly len(headers) cells; on a mismatch the
// slide is not appended and a *ContentShapeError is returned.
func (d *Deck) AddTableSlide(title string, headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return &ContentShapeError{Slide: title, Detail: "header row", Want: 1, Got: 0}
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return &ContentShapeError{
				Slide:  title,
				Detail: rowLabel(i),
				Want:   len(headers),
				Got:    len(row),
			}
		}
	}

	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = copyStrings(row)
	}
	d.slides = append(d.slides, Slide{
		Kind:    KindTable,
		Title:   title,
		Headers: copyStrings(headers),
		Rows:    copied,
	})
	return nil
}

// AddChartSlide appends a slide containing one chart of the requested kind.
// Every series must have exactly len(categories) values; on a mismatch the
// slide is not appended and a *ContentShapeError is returned.
func (d *Deck) AddChartSlide(title string, categories []string, series []Series, kind ChartKind) error {
	if len(categories) == 0 {
		return &ContentShapeError{Slide: title, Detail: "category axis", Want: 1, Got: 0}
	}
	for _, ser := range series {
		if len(ser.Values) != len(categories) {
			return &ContentShapeError{
				Slide:  title,
				Detail: "series " + ser.Name,
				Want:   len(categories),
				Got:    len(ser.Values),
			}
		}
	}

	copied := make([]Series, len(series))
	for i, ser := range series {
		copied[i] = Series{Name: ser.Name, Values: append([]float64(nil), ser.Values...)}
	}
	d.slides = append(d.slides, Slide{
		Kind:       KindChart,
		Title:      title,
		Categories: copyStrings(categories),
		Series:     copied,
		Chart:      kind,
	})
	return nil
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
