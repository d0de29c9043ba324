package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/KholoudRashdanCorporateWork/Azka-Company-Workshop/deck"
)

// PPTService renders a deck to PowerPoint format using GoPPT (pure Go).
type PPTService struct {
	Title   string
	Creator string
}

// NewPPTService creates a new PPT service.
func NewPPTService() *PPTService {
	return &PPTService{}
}

// PPT布局常量 - 4:3 页面，与工作坊母版一致
const (
	emuPerInch = 914400

	// 页面边距 (EMU)
	pptMarginLeft = int64(0.5 * emuPerInch)
	pptMarginTop  = int64(0.4 * emuPerInch)

	// 内容区域 (EMU)
	pptContentWidth = int64(9.0 * emuPerInch)
	pptHeadingH     = int64(0.8 * emuPerInch)
	pptBodyTop      = int64(1.5 * emuPerInch)
	pptBodyHeight   = int64(5.5 * emuPerInch)

	// 双栏布局 (EMU)
	pptColumnWidth  = int64(4.5 * emuPerInch)
	pptRightColLeft = int64(5.2 * emuPerInch)
	pptColumnHeight = int64(5.0 * emuPerInch)

	// 字体大小 (pt)
	pptFontTitle     = 44
	pptFontSubtitle  = 24
	pptFontHeading   = 32
	pptFontBody      = 20
	pptFontColumn    = 18
	pptFontTableHead = 16
	pptFontTableCell = 14
)

// Workshop palette.
const (
	colorTitle      = "FF003366" // navy headings
	colorSubtitle   = "FF4472C4" // steel blue
	colorHeaderFill = "FF003366" // table header background
	colorRowShade   = "FFDCE6F1" // even body rows
	colorBody       = "FF000000"
)

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment to center
func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

// ExportToFile renders the deck, writes it to path and returns the slide
// count. Nothing is written when rendering fails.
func (s *PPTService) ExportToFile(d *deck.Deck, path string) (int, error) {
	data, err := s.ExportDeck(d)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write PPT file: %w", err)
	}
	return d.SlideCount(), nil
}

// ExportDeck renders the deck to PPTX bytes.
func (s *PPTService) ExportDeck(d *deck.Deck) ([]byte, error) {
	p := ppt.New()
	props := p.GetDocumentProperties()
	props.Title = s.Title
	props.Creator = s.Creator

	layout := p.GetLayout()
	layout.CX = int64(d.Width() * emuPerInch)
	layout.CY = int64(d.Height() * emuPerInch)

	for i, sl := range d.Slides() {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}

		switch sl.Kind {
		case deck.KindTitle:
			s.renderTitleSlide(slide, sl)
		case deck.KindBulleted:
			s.renderBulletedSlide(slide, sl)
		case deck.KindTwoColumn:
			s.renderTwoColumnSlide(slide, sl)
		case deck.KindTable:
			s.renderTableSlide(slide, sl)
		case deck.KindChart:
			s.renderChartSlide(slide, sl)
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

// renderTitleSlide centers a large bold heading with an optional subtitle.
func (s *PPTService) renderTitleSlide(slide *ppt.Slide, sl deck.Slide) {
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(pptMarginLeft).SetOffsetY(int64(2.3 * emuPerInch))
	titleShape.SetWidth(pptContentWidth).SetHeight(int64(1.4 * emuPerInch))
	tr := titleShape.CreateTextRun(sl.Title)
	tr.GetFont().SetSize(pptFontTitle).SetBold(true).SetColor(ppt.NewColor(colorTitle))
	alignCenter(titleShape.GetActiveParagraph())

	// Absent subtitle is a no-op, matching the workshop master layouts.
	if sl.Subtitle != "" {
		subShape := slide.CreateRichTextShape()
		subShape.SetOffsetX(pptMarginLeft).SetOffsetY(int64(4.0 * emuPerInch))
		subShape.SetWidth(pptContentWidth).SetHeight(int64(0.8 * emuPerInch))
		subTr := subShape.CreateTextRun(sl.Subtitle)
		subTr.GetFont().SetSize(pptFontSubtitle).SetColor(ppt.NewColor(colorSubtitle))
		alignCenter(subShape.GetActiveParagraph())
	}
}

// renderSlideHeading adds the navy heading shared by all content slides.
func (s *PPTService) renderSlideHeading(slide *ppt.Slide, title string) {
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(pptMarginLeft).SetOffsetY(pptMarginTop)
	titleShape.SetWidth(pptContentWidth).SetHeight(pptHeadingH)
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(pptFontHeading).SetBold(true).SetColor(ppt.NewColor(colorTitle))
}

func (s *PPTService) renderBulletedSlide(slide *ppt.Slide, sl deck.Slide) {
	s.renderSlideHeading(slide, sl.Title)

	bodyShape := slide.CreateRichTextShape()
	bodyShape.SetOffsetX(pptMarginLeft).SetOffsetY(pptBodyTop)
	bodyShape.SetWidth(pptContentWidth).SetHeight(pptBodyHeight)
	s.renderLines(bodyShape, sl.Items, pptFontBody)
}

func (s *PPTService) renderTwoColumnSlide(slide *ppt.Slide, sl deck.Slide) {
	s.renderSlideHeading(slide, sl.Title)

	leftShape := slide.CreateRichTextShape()
	leftShape.SetOffsetX(pptMarginLeft).SetOffsetY(pptBodyTop)
	leftShape.SetWidth(pptColumnWidth).SetHeight(pptColumnHeight)
	s.renderLines(leftShape, sl.Left, pptFontColumn)

	rightShape := slide.CreateRichTextShape()
	rightShape.SetOffsetX(pptRightColLeft).SetOffsetY(pptBodyTop)
	rightShape.SetWidth(pptColumnWidth).SetHeight(pptColumnHeight)
	s.renderLines(rightShape, sl.Right, pptFontColumn)
}

// renderLines writes one paragraph per line into shape. Empty strings become
// blank spacing lines, the deck's intentional formatting device.
func (s *PPTService) renderLines(shape *ppt.RichTextShape, lines []string, fontSize int) {
	for i, line := range lines {
		if i > 0 {
			shape.CreateParagraph()
		}
		if line == "" {
			tr := shape.CreateTextRun(" ")
			tr.GetFont().SetSize(8)
			continue
		}
		tr := shape.CreateTextRun(line)
		tr.GetFont().SetSize(fontSize).SetColor(ppt.NewColor(colorBody))
	}
}

// renderTableSlide lays the grid out as one rich-text shape per cell: header
// cells get the navy fill with white bold text, body rows alternate shading
// by parity (even 0-based rows shaded).
func (s *PPTService) renderTableSlide(slide *ppt.Slide, sl deck.Slide) {
	s.renderSlideHeading(slide, sl.Title)

	tableTop := 1.5
	tableWidth := 9.0
	colWidth := tableWidth / float64(len(sl.Headers))
	headerHeight := 0.45

	rowHeight := 0.5
	if n := len(sl.Rows); n > 0 {
		rowHeight = (5.4 - headerHeight) / float64(n)
		if rowHeight > 0.6 {
			rowHeight = 0.6
		}
	}

	for j, header := range sl.Headers {
		cell := slide.CreateRichTextShape()
		cell.SetOffsetX(pptMarginLeft + int64(float64(j)*colWidth*emuPerInch))
		cell.SetOffsetY(int64(tableTop * emuPerInch))
		cell.SetWidth(int64(colWidth * emuPerInch)).SetHeight(int64(headerHeight * emuPerInch))
		cell.SetFill(solidFill(colorHeaderFill))
		tr := cell.CreateTextRun(header)
		tr.GetFont().SetSize(pptFontTableHead).SetBold(true).SetColor(ppt.ColorWhite)
	}

	for r, row := range sl.Rows {
		y := tableTop + headerHeight + float64(r)*rowHeight
		for j, value := range row {
			cell := slide.CreateRichTextShape()
			cell.SetOffsetX(pptMarginLeft + int64(float64(j)*colWidth*emuPerInch))
			cell.SetOffsetY(int64(y * emuPerInch))
			cell.SetWidth(int64(colWidth * emuPerInch)).SetHeight(int64(rowHeight * emuPerInch))
			if shadedBodyRow(r) {
				cell.SetFill(solidFill(colorRowShade))
			}
			// KPI cells carry embedded newlines; each becomes its own paragraph.
			for i, line := range strings.Split(value, "\n") {
				if i > 0 {
					cell.CreateParagraph()
				}
				tr := cell.CreateTextRun(line)
				tr.GetFont().SetSize(pptFontTableCell).SetColor(ppt.NewColor(colorBody))
			}
		}
	}
}

// shadedBodyRow reports whether the 0-based body row gets the shaded fill.
func shadedBodyRow(r int) bool {
	return r%2 == 0
}

func (s *PPTService) renderChartSlide(slide *ppt.Slide, sl deck.Slide) {
	s.renderSlideHeading(slide, sl.Title)

	chart := slide.CreateChartShape()
	chart.SetOffsetX(int64(1.5 * emuPerInch)).SetOffsetY(int64(2.0 * emuPerInch))
	chart.SetWidth(int64(7.0 * emuPerInch)).SetHeight(int64(4.5 * emuPerInch))

	switch sl.Chart {
	case deck.ChartLine:
		lc := &ppt.LineChart{}
		for _, ser := range sl.Series {
			lc.Series = append(lc.Series, chartSeries(ser, sl.Categories))
		}
		chart.GetPlotArea().SetType(lc)
	case deck.ChartPie:
		// Pie charts plot one series; the first one wins.
		pc := &ppt.PieChart{}
		if len(sl.Series) > 0 {
			pc.Series = append(pc.Series, chartSeries(sl.Series[0], sl.Categories))
		}
		chart.GetPlotArea().SetType(pc)
	default:
		bc := &ppt.BarChart{}
		for _, ser := range sl.Series {
			bc.Series = append(bc.Series, chartSeries(ser, sl.Categories))
		}
		chart.GetPlotArea().SetType(bc)
	}

	// GoPPT draws the legend along the bottom edge of the chart frame.
	chart.GetLegend().Visible = true
}

func chartSeries(ser deck.Series, categories []string) *ppt.ChartSeries {
	values := make(map[string]float64, len(categories))
	for i, cat := range categories {
		values[cat] = ser.Values[i]
	}
	return &ppt.ChartSeries{
		Title:      ser.Name,
		Categories: append([]string(nil), categories...),
		Values:     values,
	}
}
