package export

import (
	"fmt"
	"os"
	"strings"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"github.com/KholoudRashdanCorporateWork/Azka-Company-Workshop/deck"
)

// WordService renders the deck as a facilitator guide using GoWord (pure Go):
// a linear document with one heading per slide, so the presenter can follow
// the deck without projecting it.
type WordService struct {
	Title   string
	Creator string
}

// NewWordService creates a new facilitator guide service.
func NewWordService() *WordService {
	return &WordService{}
}

const wordTableWidth = 9000

// ExportToFile renders the guide and writes it to path.
func (s *WordService) ExportToFile(d *deck.Deck, path string) error {
	data, err := s.ExportDeck(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write Word file: %w", err)
	}
	return nil
}

// ExportDeck renders the guide to DOCX bytes.
func (s *WordService) ExportDeck(d *deck.Deck) ([]byte, error) {
	doc := goword.New()
	doc.Properties.Title = s.Title
	doc.Properties.Creator = s.Creator

	sec := doc.AddSection()

	if s.Title != "" {
		sec.AddTitle(s.Title, 1)
		sec.AddTextBreak(1)
	}

	for _, sl := range d.Slides() {
		switch sl.Kind {
		case deck.KindTitle:
			sec.AddText(sl.Title,
				&style.FontStyle{Bold: true, Size: 16, Color: "003366"},
				&style.ParagraphStyle{Alignment: style.AlignCenter})
			if sl.Subtitle != "" {
				sec.AddText(sl.Subtitle,
					&style.FontStyle{Size: 12, Color: "4472C4"},
					&style.ParagraphStyle{Alignment: style.AlignCenter})
			}
			sec.AddTextBreak(1)
		case deck.KindBulleted:
			s.addHeading(sec, sl.Title)
			s.addLines(sec, sl.Items)
			sec.AddTextBreak(1)
		case deck.KindTwoColumn:
			s.addHeading(sec, sl.Title)
			s.addLines(sec, sl.Left)
			sec.AddTextBreak(1)
			s.addLines(sec, sl.Right)
			sec.AddTextBreak(1)
		case deck.KindTable:
			s.addHeading(sec, sl.Title)
			s.addTable(sec, sl.Headers, sl.Rows)
			sec.AddTextBreak(1)
		case deck.KindChart:
			s.addHeading(sec, sl.Title)
			headers, rows := chartGrid(sl)
			s.addTable(sec, headers, rows)
			sec.AddTextBreak(1)
		}
	}

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}
	return data, nil
}

func (s *WordService) addHeading(sec *goword.Section, title string) {
	sec.AddText(title,
		&style.FontStyle{Bold: true, Size: 13, Color: "003366"},
		nil)
}

func (s *WordService) addLines(sec *goword.Section, lines []string) {
	for _, line := range lines {
		if line == "" {
			sec.AddTextBreak(1)
			continue
		}
		sec.AddText(line,
			&style.FontStyle{Size: 11, Color: "334155"},
			nil)
	}
}

func (s *WordService) addTable(sec *goword.Section, headers []string, rows [][]string) {
	colWidth := wordTableWidth / len(headers)

	ts := &style.TableStyle{Width: wordTableWidth, Alignment: "center"}
	ts.SetAllBorders("single", 4, "D9D9D9")
	tbl := sec.AddTable(ts)
	tbl.Grid = make([]int, len(headers))
	for i := range tbl.Grid {
		tbl.Grid[i] = colWidth
	}

	headerRow := tbl.AddRow(0, &style.RowStyle{IsHeader: true})
	for _, header := range headers {
		headerRow.AddCell(colWidth, &style.CellStyle{
			Shading: &style.Shading{Fill: "003366"},
		}).AddText(header, &style.FontStyle{Bold: true, Size: 9, Color: "FFFFFF"}, nil)
	}

	for _, row := range rows {
		tr := tbl.AddRow(0, nil)
		for _, value := range row {
			cell := tr.AddCell(colWidth, nil)
			for _, line := range strings.Split(value, "\n") {
				cell.AddText(line, &style.FontStyle{Size: 9}, nil)
			}
		}
	}
}
