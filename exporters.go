package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/KholoudRashdanCorporateWork/Azka-Company-Workshop/deck"
	"github.com/KholoudRashdanCorporateWork/Azka-Company-Workshop/export"
)

// Output file names. The base name matches the deck title.
const (
	outputDir = "dist"

	pptxName = "How_to_Write_Effective_KPIs_and_SMART_Objectives.pptx"
	pdfName  = "How_to_Write_Effective_KPIs_and_SMART_Objectives_Handout.pdf"
	xlsxName = "How_to_Write_Effective_KPIs_and_SMART_Objectives_Workbook.xlsx"
	docxName = "How_to_Write_Effective_KPIs_and_SMART_Objectives_Facilitator_Guide.docx"

	docTitle   = "How to Write Effective KPIs and SMART Objectives"
	docCreator = "Azka Company"
)

// ExportManager bundles the four document exporters behind one entry point,
// so main only deals with a deck and an output directory.
type ExportManager struct {
	log   *zap.Logger
	ppt   *export.PPTService
	pdf   *export.PDFService
	excel *export.ExcelService
	word  *export.WordService
}

func NewExportManager(log *zap.Logger) *ExportManager {
	m := &ExportManager{
		log:   log,
		ppt:   export.NewPPTService(),
		pdf:   export.NewPDFService(),
		excel: export.NewExcelService(),
		word:  export.NewWordService(),
	}
	m.ppt.Title = docTitle
	m.ppt.Creator = docCreator
	m.pdf.Footer = docTitle + " — " + docCreator
	m.excel.Title = docTitle
	m.excel.Creator = docCreator
	m.word.Title = docTitle
	m.word.Creator = docCreator
	return m
}

// ExportAll writes the slide deck and its companion artifacts into dir.
// The deck is the primary artifact; any failure aborts the run.
func (m *ExportManager) ExportAll(d *deck.Deck, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return WrapError("export", "mkdir", fmt.Errorf("failed to create output directory: %w", err))
	}

	pptxPath := filepath.Join(dir, pptxName)
	slides, err := m.ppt.ExportToFile(d, pptxPath)
	if err != nil {
		return WrapError("export", "pptx", err)
	}
	m.log.Info("wrote slide deck",
		zap.String("path", pptxPath),
		zap.Int("slides", slides))

	pdfPath := filepath.Join(dir, pdfName)
	if err := m.pdf.ExportToFile(d, pdfPath); err != nil {
		return WrapError("export", "pdf", err)
	}
	m.log.Info("wrote participant handout", zap.String("path", pdfPath))

	xlsxPath := filepath.Join(dir, xlsxName)
	if err := m.excel.ExportToFile(d, xlsxPath); err != nil {
		return WrapError("export", "xlsx", err)
	}
	m.log.Info("wrote exercise workbook", zap.String("path", xlsxPath))

	docxPath := filepath.Join(dir, docxName)
	if err := m.word.ExportToFile(d, docxPath); err != nil {
		return WrapError("export", "docx", err)
	}
	m.log.Info("wrote facilitator guide", zap.String("path", docxPath))

	return nil
}
