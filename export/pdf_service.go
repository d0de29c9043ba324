package export

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/KholoudRashdanCorporateWork/Azka-Company-Workshop/deck"
)

// PDFService renders the deck as a participant handout PDF using maroto.
// Each slide becomes an outline section; tables keep their grid layout and
// charts are listed as their underlying data.
type PDFService struct {
	Footer string
}

// NewPDFService creates a new PDF handout service.
func NewPDFService() *PDFService {
	return &PDFService{}
}

var (
	pdfNavy  = &props.Color{Red: 0, Green: 51, Blue: 102}
	pdfBlue  = &props.Color{Red: 68, Green: 114, Blue: 196}
	pdfSlate = &props.Color{Red: 100, Green: 116, Blue: 139}
)

// ExportToFile renders the deck and writes the handout to path.
func (s *PDFService) ExportToFile(d *deck.Deck, path string) error {
	data, err := s.ExportDeck(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write PDF file: %w", err)
	}
	return nil
}

// ExportDeck renders the deck to PDF bytes.
func (s *PDFService) ExportDeck(d *deck.Deck) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	for _, sl := range d.Slides() {
		switch sl.Kind {
		case deck.KindTitle:
			s.addTitleSection(m, sl)
		case deck.KindBulleted:
			s.addLinesSection(m, sl.Title, sl.Items)
		case deck.KindTwoColumn:
			s.addTwoColumnSection(m, sl)
		case deck.KindTable:
			s.addTableSection(m, sl)
		case deck.KindChart:
			s.addChartSection(m, sl)
		}
	}

	if s.Footer != "" {
		s.addFooter(m)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return document.GetBytes(), nil
}

func (s *PDFService) addTitleSection(m core.Maroto, sl deck.Slide) {
	m.AddRow(16,
		col.New(12).Add(
			text.New(sl.Title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  pdfNavy,
			}),
		),
	)
	if sl.Subtitle != "" {
		m.AddRow(8,
			col.New(12).Add(
				text.New(sl.Subtitle, props.Text{
					Family: fontfamily.Arial,
					Size:   12,
					Align:  align.Center,
					Color:  pdfBlue,
				}),
			),
		)
	}
	m.AddRow(5)
}

func (s *PDFService) addSectionHeading(m core.Maroto, title string) {
	m.AddRow(10,
		col.New(12).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   13,
				Style:  fontstyle.Bold,
				Color:  pdfNavy,
			}),
		),
	)
}

func (s *PDFService) addLinesSection(m core.Maroto, title string, lines []string) {
	s.addSectionHeading(m, title)

	for _, line := range lines {
		if line == "" {
			m.AddRow(3)
			continue
		}
		m.AddRow(6,
			col.New(12).Add(
				text.New(line, props.Text{
					Family: fontfamily.Arial,
					Size:   9,
				}),
			),
		)
	}
	m.AddRow(5)
}

func (s *PDFService) addTwoColumnSection(m core.Maroto, sl deck.Slide) {
	s.addSectionHeading(m, sl.Title)

	rows := len(sl.Left)
	if len(sl.Right) > rows {
		rows = len(sl.Right)
	}
	for i := 0; i < rows; i++ {
		left, right := "", ""
		if i < len(sl.Left) {
			left = sl.Left[i]
		}
		if i < len(sl.Right) {
			right = sl.Right[i]
		}
		m.AddRow(6,
			col.New(6).Add(
				text.New(left, props.Text{Family: fontfamily.Arial, Size: 9}),
			),
			col.New(6).Add(
				text.New(right, props.Text{Family: fontfamily.Arial, Size: 9}),
			),
		)
	}
	m.AddRow(5)
}

func (s *PDFService) addTableSection(m core.Maroto, sl deck.Slide) {
	s.addSectionHeading(m, sl.Title)

	colWidth := 12 / len(sl.Headers)
	if colWidth < 1 {
		colWidth = 1
	}

	headerCols := []core.Col{}
	for _, header := range sl.Headers {
		headerCols = append(headerCols, col.New(colWidth).Add(
			text.New(header, props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  pdfNavy,
			}),
		))
	}
	m.AddRow(7, headerCols...)

	for _, row := range sl.Rows {
		dataCols := []core.Col{}
		for _, value := range row {
			// Rows have a fixed height; fold multi-line cells onto one line.
			value = strings.ReplaceAll(value, "\n", "  ")
			dataCols = append(dataCols, col.New(colWidth).Add(
				text.New(value, props.Text{
					Family: fontfamily.Arial,
					Size:   7,
					Align:  align.Left,
				}),
			))
		}
		m.AddRow(6, dataCols...)
	}
	m.AddRow(5)
}

// addChartSection writes the chart data as a compact grid: one header row of
// categories, one row per series.
func (s *PDFService) addChartSection(m core.Maroto, sl deck.Slide) {
	s.addSectionHeading(m, sl.Title)

	colWidth := 12 / (len(sl.Categories) + 1)
	if colWidth < 1 {
		colWidth = 1
	}

	headerCols := []core.Col{col.New(colWidth)}
	for _, cat := range sl.Categories {
		headerCols = append(headerCols, col.New(colWidth).Add(
			text.New(cat, props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  pdfNavy,
			}),
		))
	}
	m.AddRow(7, headerCols...)

	for _, ser := range sl.Series {
		dataCols := []core.Col{col.New(colWidth).Add(
			text.New(ser.Name, props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Style:  fontstyle.Bold,
			}),
		)}
		for _, v := range ser.Values {
			dataCols = append(dataCols, col.New(colWidth).Add(
				text.New(strconv.FormatFloat(v, 'f', -1, 64), props.Text{
					Family: fontfamily.Arial,
					Size:   8,
					Align:  align.Center,
				}),
			))
		}
		m.AddRow(6, dataCols...)
	}
	m.AddRow(5)
}

func (s *PDFService) addFooter(m core.Maroto) {
	m.AddRow(10,
		col.New(12).Add(
			text.New(s.Footer, props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Align:  align.Center,
				Color:  pdfSlate,
			}),
		),
	)
}
