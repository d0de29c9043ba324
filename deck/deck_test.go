package deck

import (
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestNewDeckIsEmpty(t *testing.T) {
	d := New()
	if d.SlideCount() != 0 {
		t.Errorf("SlideCount() = %d, want 0", d.SlideCount())
	}
	if d.Width() != PageWidth || d.Height() != PageHeight {
		t.Errorf("page = %gx%g, want %gx%g", d.Width(), d.Height(), PageWidth, PageHeight)
	}
}

func TestAddTitleSlide(t *testing.T) {
	d := New()
	d.AddTitleSlide("Workshop", "A 2-Day Workshop")

	if d.SlideCount() != 1 {
		t.Fatalf("SlideCount() = %d, want 1", d.SlideCount())
	}
	sl := d.Slides()[0]
	if sl.Kind != KindTitle {
		t.Errorf("Kind = %v, want KindTitle", sl.Kind)
	}
	if sl.Title != "Workshop" || sl.Subtitle != "A 2-Day Workshop" {
		t.Errorf("title/subtitle = %q/%q", sl.Title, sl.Subtitle)
	}
}

func TestAddTitleSlide_EmptySubtitle(t *testing.T) {
	d := New()
	d.AddTitleSlide("DAY 1", "")

	sl := d.Slides()[0]
	if sl.Subtitle != "" {
		t.Errorf("Subtitle = %q, want empty", sl.Subtitle)
	}
}

func TestAddBulletedSlide_EmptyListAllowed(t *testing.T) {
	d := New()
	d.AddBulletedSlide("Notes", nil)

	if d.SlideCount() != 1 {
		t.Fatalf("SlideCount() = %d, want 1", d.SlideCount())
	}
	if items := d.Slides()[0].Items; len(items) != 0 {
		t.Errorf("Items = %v, want empty", items)
	}
}

func TestAddBulletedSlide_CopiesItems(t *testing.T) {
	items := []string{"one", "two"}
	d := New()
	d.AddBulletedSlide("Agenda", items)

	items[0] = "mutated"
	if got := d.Slides()[0].Items[0]; got != "one" {
		t.Errorf("Items[0] = %q, want %q after caller mutation", got, "one")
	}
}

func TestAddTwoColumnSlide(t *testing.T) {
	d := New()
	d.AddTwoColumnSlide("S - Specific",
		[]string{"What does SPECIFIC mean?"},
		[]string{"Poor example", "SMART example"})

	sl := d.Slides()[0]
	if sl.Kind != KindTwoColumn {
		t.Errorf("Kind = %v, want KindTwoColumn", sl.Kind)
	}
	if len(sl.Left) != 1 || len(sl.Right) != 2 {
		t.Errorf("columns = %d/%d, want 1/2", len(sl.Left), len(sl.Right))
	}
}

func TestAddTableSlide_Valid(t *testing.T) {
	d := New()
	err := d.AddTableSlide("Objectives vs KPIs",
		[]string{"Aspect", "Objectives", "KPIs"},
		[][]string{
			{"Definition", "What you want to achieve", "How you measure achievement"},
			{"Nature", "Qualitative or Quantitative", "Always Quantitative"},
		})
	if err != nil {
		t.Fatalf("AddTableSlide() error = %v", err)
	}

	sl := d.Slides()[0]
	if len(sl.Headers) != 3 || len(sl.Rows) != 2 {
		t.Errorf("grid = %dx%d headers/rows, want 3x2", len(sl.Headers), len(sl.Rows))
	}
}

func TestAddTableSlide_RowWidthMismatch(t *testing.T) {
	d := New()
	err := d.AddTableSlide("Broken",
		[]string{"A", "B", "C"},
		[][]string{
			{"1", "2", "3"},
			{"1", "2"},
		})

	var cse *ContentShapeError
	if !errors.As(err, &cse) {
		t.Fatalf("error = %v, want *ContentShapeError", err)
	}
	if cse.Want != 3 || cse.Got != 2 {
		t.Errorf("Want/Got = %d/%d, want 3/2", cse.Want, cse.Got)
	}
	if !strings.Contains(cse.Error(), "row 2") {
		t.Errorf("Error() = %q, should name the offending row", cse.Error())
	}
	if d.SlideCount() != 0 {
		t.Errorf("SlideCount() = %d, rejected slide must not be appended", d.SlideCount())
	}
}

func TestAddTableSlide_EmptyHeaders(t *testing.T) {
	d := New()
	err := d.AddTableSlide("No headers", nil, nil)

	var cse *ContentShapeError
	if !errors.As(err, &cse) {
		t.Fatalf("error = %v, want *ContentShapeError", err)
	}
	if d.SlideCount() != 0 {
		t.Errorf("SlideCount() = %d, want 0", d.SlideCount())
	}
}

func TestAddChartSlide_Valid(t *testing.T) {
	d := New()
	err := d.AddChartSlide("Deployment Frequency",
		[]string{"Q1", "Q2", "Q3", "Q4"},
		[]Series{
			{Name: "Deployment Frequency", Values: []float64{4, 8, 12, 16}},
			{Name: "Target", Values: []float64{16, 16, 16, 16}},
		},
		ChartLine)
	if err != nil {
		t.Fatalf("AddChartSlide() error = %v", err)
	}

	sl := d.Slides()[0]
	if sl.Kind != KindChart || sl.Chart != ChartLine {
		t.Errorf("Kind/Chart = %v/%v, want KindChart/ChartLine", sl.Kind, sl.Chart)
	}
	if len(sl.Series) != 2 {
		t.Errorf("len(Series) = %d, want 2", len(sl.Series))
	}
	// Series order is the legend order.
	if sl.Series[0].Name != "Deployment Frequency" || sl.Series[1].Name != "Target" {
		t.Errorf("series order = %q, %q", sl.Series[0].Name, sl.Series[1].Name)
	}
}

func TestAddChartSlide_SeriesLengthMismatch(t *testing.T) {
	d := New()
	err := d.AddChartSlide("Broken chart",
		[]string{"Q1", "Q2", "Q3"},
		[]Series{{Name: "Actual", Values: []float64{1, 2}}},
		ChartBar)

	var cse *ContentShapeError
	if !errors.As(err, &cse) {
		t.Fatalf("error = %v, want *ContentShapeError", err)
	}
	if cse.Want != 3 || cse.Got != 2 {
		t.Errorf("Want/Got = %d/%d, want 3/2", cse.Want, cse.Got)
	}
	if !strings.Contains(cse.Error(), "Actual") {
		t.Errorf("Error() = %q, should name the offending series", cse.Error())
	}
	if d.SlideCount() != 0 {
		t.Errorf("SlideCount() = %d, rejected slide must not be appended", d.SlideCount())
	}
}

func TestAddChartSlide_NoCategories(t *testing.T) {
	d := New()
	err := d.AddChartSlide("Empty axis", nil, nil, ChartBar)

	var cse *ContentShapeError
	if !errors.As(err, &cse) {
		t.Fatalf("error = %v, want *ContentShapeError", err)
	}
	if d.SlideCount() != 0 {
		t.Errorf("SlideCount() = %d, want 0", d.SlideCount())
	}
}

// TestSlideOrderPreserved verifies that any sequence of successful Add calls
// yields slides in exactly that order.
func TestSlideOrderPreserved(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		titles := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z ]{1,20}`), 1, 20).Draw(t, "titles")
		kinds := rapid.SliceOfN(rapid.IntRange(0, 2), len(titles), len(titles)).Draw(t, "kinds")

		d := New()
		for i, title := range titles {
			switch kinds[i] {
			case 0:
				d.AddTitleSlide(title, "")
			case 1:
				d.AddBulletedSlide(title, []string{"item"})
			default:
				d.AddTwoColumnSlide(title, []string{"l"}, []string{"r"})
			}
		}

		if d.SlideCount() != len(titles) {
			t.Fatalf("SlideCount() = %d, want %d", d.SlideCount(), len(titles))
		}
		for i, sl := range d.Slides() {
			if sl.Title != titles[i] {
				t.Fatalf("slide %d title = %q, want %q", i, sl.Title, titles[i])
			}
		}
	})
}

// TestTableValidationIsAllOrNothing verifies that a table is appended exactly
// when every row matches the header width, and never partially.
func TestTableValidationIsAllOrNothing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cols := rapid.IntRange(1, 6).Draw(t, "cols")
		headers := make([]string, cols)
		for i := range headers {
			headers[i] = "h"
		}

		widths := rapid.SliceOfN(rapid.IntRange(1, 6), 0, 8).Draw(t, "widths")
		rows := make([][]string, len(widths))
		allMatch := true
		for i, w := range widths {
			rows[i] = make([]string, w)
			if w != cols {
				allMatch = false
			}
		}

		d := New()
		err := d.AddTableSlide("t", headers, rows)

		if allMatch {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.SlideCount() != 1 {
				t.Fatalf("SlideCount() = %d, want 1", d.SlideCount())
			}
		} else {
			var cse *ContentShapeError
			if !errors.As(err, &cse) {
				t.Fatalf("error = %v, want *ContentShapeError", err)
			}
			if d.SlideCount() != 0 {
				t.Fatalf("SlideCount() = %d, want 0 after rejection", d.SlideCount())
			}
		}
	})
}
