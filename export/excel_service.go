package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"github.com/KholoudRashdanCorporateWork/Azka-Company-Workshop/deck"
)

// ExcelService renders the deck's tabular content as an exercise workbook
// using GoExcel (pure Go): one sheet per table slide plus a data sheet per
// chart. Participants fill the template sheets in during the workshop.
type ExcelService struct {
	Title   string
	Creator string
}

// NewExcelService creates a new workbook export service.
func NewExcelService() *ExcelService {
	return &ExcelService{}
}

// Excel sheet names are capped at 31 characters.
const maxSheetNameLen = 31

// ExportToFile renders the workbook and writes it to path.
func (s *ExcelService) ExportToFile(d *deck.Deck, path string) error {
	data, err := s.ExportDeck(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// ExportDeck renders the workbook to XLSX bytes. Decks without table or
// chart slides produce an error rather than an empty workbook.
func (s *ExcelService) ExportDeck(d *deck.Deck) ([]byte, error) {
	wb := gospreadsheet.New()

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
			Name:  "Calibri",
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: "003366",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
		})

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: "Calibri",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
			WrapText:   true,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		})

	used := map[string]bool{}
	sheetIndex := 0
	for _, sl := range d.Slides() {
		var headers []string
		var rows [][]string
		switch sl.Kind {
		case deck.KindTable:
			headers = sl.Headers
			rows = sl.Rows
		case deck.KindChart:
			headers, rows = chartGrid(sl)
		default:
			continue
		}

		name := sheetName(sl.Title, sheetIndex, used)
		var ws *gospreadsheet.Worksheet
		if sheetIndex == 0 {
			ws = wb.GetActiveSheet()
			ws.SetTitle(name)
		} else {
			var err error
			ws, err = wb.AddSheet(name)
			if err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
			}
		}
		sheetIndex++

		writeSheet(ws, headers, rows, headerStyle, dataStyle)
	}

	if sheetIndex == 0 {
		return nil, fmt.Errorf("deck has no tabular content to export")
	}

	wb.Properties.Title = s.Title
	wb.Properties.Creator = s.Creator
	wb.Properties.LastModifiedBy = s.Creator

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(ws *gospreadsheet.Worksheet, headers []string, rows [][]string, headerStyle, dataStyle *gospreadsheet.Style) {
	for i, header := range headers {
		cellName, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cellName, header)
		ws.SetCellStyle(cellName, headerStyle)

		width := float64(len([]rune(header))) * 1.5
		if width < 14 {
			width = 14
		}
		if width > 60 {
			width = 60
		}
		ws.SetColumnWidth(i, width)
	}
	ws.SetRowHeight(0, 25)

	for rowIdx, row := range rows {
		excelRow := rowIdx + 1
		for colIdx, value := range row {
			cellName, _ := gospreadsheet.CellName(excelRow, colIdx)
			ws.SetCellValue(cellName, value)
			ws.SetCellStyle(cellName, dataStyle)
		}
		ws.SetRowHeight(excelRow, 20)
	}

	ws.FreezePane("A2")
}

// chartGrid flattens a chart slide into headers and rows: the category axis
// as columns, one row per series.
func chartGrid(sl deck.Slide) ([]string, [][]string) {
	headers := append([]string{"Series"}, sl.Categories...)
	rows := make([][]string, 0, len(sl.Series))
	for _, ser := range sl.Series {
		row := make([]string, 0, len(ser.Values)+1)
		row = append(row, ser.Name)
		for _, v := range ser.Values {
			row = append(row, fmt.Sprintf("%g", v))
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// sheetName derives a unique, length-capped sheet name from a slide title.
func sheetName(title string, index int, used map[string]bool) string {
	name := title
	for _, bad := range []string{":", "\\", "/", "?", "*", "[", "]"} {
		name = strings.ReplaceAll(name, bad, "")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Sheet%d", index+1)
	}
	if runes := []rune(name); len(runes) > maxSheetNameLen {
		name = strings.TrimRight(string(runes[:maxSheetNameLen]), " ")
	}
	base := name
	for n := 2; used[name]; n++ {
		suffix := fmt.Sprintf(" %d", n)
		runes := []rune(base)
		if len(runes)+len(suffix) > maxSheetNameLen {
			runes = runes[:maxSheetNameLen-len(suffix)]
		}
		name = string(runes) + suffix
	}
	used[name] = true
	return name
}
