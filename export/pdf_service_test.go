package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/KholoudRashdanCorporateWork/Azka-Company-Workshop/deck"
)

func TestPDFExport(t *testing.T) {
	d := sampleDeck(t)
	d.AddBulletedSlide("Agenda", []string{"Morning: SMART objectives", "", "Afternoon: KPIs"})
	d.AddTwoColumnSlide("S - Specific", []string{"Clearly defined"}, []string{"No ambiguity"})
	if err := d.AddChartSlide("Deployment Frequency",
		[]string{"Q1", "Q2"},
		[]deck.Series{{Name: "Actual", Values: []float64{4, 8}}},
		deck.ChartLine); err != nil {
		t.Fatalf("AddChartSlide() error = %v", err)
	}

	svc := NewPDFService()
	svc.Footer = "Workshop Handout"
	data, err := svc.ExportDeck(d)
	if err != nil {
		t.Fatalf("ExportDeck() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with PDF magic: % x", data[:4])
	}
}

func TestPDFExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handout.pdf")
	if err := NewPDFService().ExportToFile(sampleDeck(t), path); err != nil {
		t.Fatalf("ExportToFile() error = %v", err)
	}
}

func TestPDFExport_EmptyDeck(t *testing.T) {
	data, err := NewPDFService().ExportDeck(deck.New())
	if err != nil {
		t.Fatalf("ExportDeck() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("empty deck should still produce a valid PDF document")
	}
}
