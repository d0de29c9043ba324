package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/KholoudRashdanCorporateWork/Azka-Company-Workshop/deck"
)

func TestWordExport(t *testing.T) {
	d := sampleDeck(t)
	d.AddBulletedSlide("Agenda", []string{"Morning session", "", "Afternoon session"})
	if err := d.AddChartSlide("Deployment Frequency",
		[]string{"Q1", "Q2"},
		[]deck.Series{{Name: "Actual", Values: []float64{4, 8}}},
		deck.ChartLine); err != nil {
		t.Fatalf("AddChartSlide() error = %v", err)
	}

	svc := NewWordService()
	svc.Title = "Facilitator Guide"
	svc.Creator = "Azka Company"
	data, err := svc.ExportDeck(d)
	if err != nil {
		t.Fatalf("ExportDeck() error = %v", err)
	}
	// DOCX is a zip archive.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("output does not start with zip magic: % x", data[:2])
	}
}

func TestWordExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.docx")
	if err := NewWordService().ExportToFile(sampleDeck(t), path); err != nil {
		t.Fatalf("ExportToFile() error = %v", err)
	}
}
