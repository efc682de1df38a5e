package domain

import (
	"testing"
	"time"
)

func TestMaturityName(t *testing.T) {
	tests := map[string]string{
		"US2Y":  "2-Year",
		"US10Y": "10-Year",
		"US3M":  "3-Month",
		"USX":   "USX",
		"US":    "US",
		"USAAY": "USAAY",
		"US5D":  "US5D",
		"DE10Y": "10-Year",
		"JP3M":  "3-Month",
		"10Y":   "10-Year",
	}
	for symbol, expected := range tests {
		if got := MaturityName(symbol); got != expected {
			t.Errorf("%s expected %q, got %q", symbol, expected, got)
		}
	}
}

func TestSlopePairTitle(t *testing.T) {
	if got := DefaultSlopePair.Title(); got != "2-Year to 10-Year Slope" {
		t.Fatalf("unexpected title: %s", got)
	}
}

func TestSlopePairTitleNonUSPrefix(t *testing.T) {
	p := SlopePair{Name: "2s10s", Short: "DE2Y", Long: "DE10Y"}
	if got := p.Title(); got != "2-Year to 10-Year Slope" {
		t.Fatalf("unexpected title: %s", got)
	}
}

func TestSeriesLabelsAndYieldsAligned(t *testing.T) {
	s := MaturitySeries{{Label: "US2Y", YieldFraction: 0.045}, {Label: "US10Y", YieldFraction: 0.041}}
	labels, yields := s.Labels(), s.Yields()
	if len(labels) != len(yields) {
		t.Fatalf("labels and yields differ in length: %d vs %d", len(labels), len(yields))
	}
	if labels[1] != "US10Y" || yields[1] != 0.041 {
		t.Fatalf("unexpected alignment: %v %v", labels, yields)
	}
}

func TestPrimarySlopeFallsBackToAbsent(t *testing.T) {
	var snap *CurveSnapshot
	m := snap.PrimarySlope()
	if m.Available() || m.ShortLabel != "US2Y" || m.LongLabel != "US10Y" {
		t.Fatalf("unexpected metric: %+v", m)
	}

	v := -0.4
	snap = &CurveSnapshot{Slopes: []SlopeMetric{{Name: "2s10s", ValuePercent: &v}}, FetchedAt: time.Now()}
	if !snap.PrimarySlope().Available() {
		t.Fatal("expected primary slope to be available")
	}
}
