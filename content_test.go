package main

import (
	"testing"

	"github.com/KholoudRashdanCorporateWork/Azka-Company-Workshop/deck"
)

func TestBuildWorkshopDeck(t *testing.T) {
	d, err := buildWorkshopDeck()
	if err != nil {
		t.Fatalf("buildWorkshopDeck() error = %v", err)
	}

	if got := d.SlideCount(); got != 48 {
		t.Errorf("SlideCount() = %d, want 48", got)
	}

	slides := d.Slides()
	first := slides[0]
	if first.Kind != deck.KindTitle {
		t.Errorf("first slide Kind = %v, want KindTitle", first.Kind)
	}
	if first.Title != "How to Write Effective KPIs and SMART Objectives" {
		t.Errorf("first slide Title = %q", first.Title)
	}

	last := slides[len(slides)-1]
	if last.Kind != deck.KindTitle || last.Title != "Stay Connected" {
		t.Errorf("last slide = %v %q, want title slide %q", last.Kind, last.Title, "Stay Connected")
	}
}

func TestBuildWorkshopDeck_KindCounts(t *testing.T) {
	d, err := buildWorkshopDeck()
	if err != nil {
		t.Fatalf("buildWorkshopDeck() error = %v", err)
	}

	counts := map[deck.SlideKind]int{}
	for _, sl := range d.Slides() {
		counts[sl.Kind]++
	}

	want := map[deck.SlideKind]int{
		deck.KindTitle:     7,
		deck.KindBulleted:  21,
		deck.KindTwoColumn: 6,
		deck.KindTable:     13,
		deck.KindChart:     1,
	}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("kind %v count = %d, want %d", kind, counts[kind], n)
		}
	}
}

func TestBuildWorkshopDeck_TablesWellFormed(t *testing.T) {
	d, err := buildWorkshopDeck()
	if err != nil {
		t.Fatalf("buildWorkshopDeck() error = %v", err)
	}

	for _, sl := range d.Slides() {
		if sl.Kind != deck.KindTable {
			continue
		}
		if len(sl.Headers) == 0 {
			t.Errorf("table %q has no headers", sl.Title)
		}
		for i, row := range sl.Rows {
			if len(row) != len(sl.Headers) {
				t.Errorf("table %q row %d has %d cells, want %d",
					sl.Title, i+1, len(row), len(sl.Headers))
			}
		}
	}
}

func TestBuildWorkshopDeck_DeploymentFrequencyChart(t *testing.T) {
	d, err := buildWorkshopDeck()
	if err != nil {
		t.Fatalf("buildWorkshopDeck() error = %v", err)
	}

	var chart *deck.Slide
	for i := range d.Slides() {
		if d.Slides()[i].Kind == deck.KindChart {
			chart = &d.Slides()[i]
			break
		}
	}
	if chart == nil {
		t.Fatal("deck has no chart slide")
	}

	if chart.Chart != deck.ChartLine {
		t.Errorf("Chart = %v, want ChartLine", chart.Chart)
	}
	if len(chart.Categories) != 4 {
		t.Errorf("len(Categories) = %d, want 4 quarters", len(chart.Categories))
	}
	if len(chart.Series) != 2 {
		t.Fatalf("len(Series) = %d, want 2", len(chart.Series))
	}
	if chart.Series[0].Name != "Deployment Frequency" || chart.Series[1].Name != "Target" {
		t.Errorf("series = %q, %q", chart.Series[0].Name, chart.Series[1].Name)
	}
	for _, ser := range chart.Series {
		if len(ser.Values) != len(chart.Categories) {
			t.Errorf("series %q has %d values, want %d", ser.Name, len(ser.Values), len(chart.Categories))
		}
	}
}
