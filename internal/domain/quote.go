package domain

import "time"

// RawQuote is a single instrument quote as delivered by the market-data source.
// Last is a percentage encoded as text, e.g. "4.25%".
type RawQuote struct {
	Symbol   string `json:"symbol"`
	Last     string `json:"last"`
	Name     string `json:"name,omitempty"`
	Change   string `json:"change,omitempty"`
	LastTime string `json:"last_time,omitempty"`
}

// MaturityPoint is one entry of the plotted curve.
type MaturityPoint struct {
	Label         string  `json:"label"`
	YieldFraction float64 `json:"yield"`
}

// MaturitySeries keeps the order in which quotes arrived from the source.
type MaturitySeries []MaturityPoint

// Labels returns the maturity labels, index-aligned with Yields.
func (s MaturitySeries) Labels() []string {
	labels := make([]string, len(s))
	for i, p := range s {
		labels[i] = p.Label
	}
	return labels
}

// Yields returns the yield fractions, index-aligned with Labels.
func (s MaturitySeries) Yields() []float64 {
	yields := make([]float64, len(s))
	for i, p := range s {
		yields[i] = p.YieldFraction
	}
	return yields
}

// SkippedQuote records a quote the normalizer could not parse.
type SkippedQuote struct {
	Symbol string `json:"symbol"`
	Last   string `json:"last"`
	Reason string `json:"reason"`
}

// CurveSnapshot is the result of one refresh. Nothing in it outlives the request.
type CurveSnapshot struct {
	Series    MaturitySeries `json:"series"`
	Slopes    []SlopeMetric  `json:"slopes"`
	Skipped   []SkippedQuote `json:"skipped,omitempty"`
	FetchedAt time.Time      `json:"fetched_at"`
}

// PrimarySlope returns the first configured slope, or an absent metric when none is configured.
func (s *CurveSnapshot) PrimarySlope() SlopeMetric {
	if s == nil || len(s.Slopes) == 0 {
		return SlopeMetric{Name: DefaultSlopePair.Name, ShortLabel: DefaultSlopePair.Short, LongLabel: DefaultSlopePair.Long}
	}
	return s.Slopes[0]
}

// Chart is what a renderer consumes: parallel labels and yields plus the slope line.
type Chart struct {
	Labels    []string  `json:"labels"`
	Yields    []float64 `json:"yields"`
	SlopeText string    `json:"slope_text"`
}
