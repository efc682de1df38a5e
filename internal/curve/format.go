package curve

import (
	"fmt"

	"treasury-curve/internal/domain"
)

// NotAvailable is shown in place of a slope that could not be computed.
const NotAvailable = "Data not available"

// FormatSlope renders "2-Year to 10-Year Slope: -0.40%" or NotAvailable.
func FormatSlope(m domain.SlopeMetric) string {
	if !m.Available() {
		return NotAvailable
	}
	pair := domain.SlopePair{Short: m.ShortLabel, Long: m.LongLabel}
	return fmt.Sprintf("%s: %.2f%%", pair.Title(), *m.ValuePercent)
}

// ToChart builds the render contract from a series and a slope line.
func ToChart(series domain.MaturitySeries, slopeText string) domain.Chart {
	return domain.Chart{
		Labels:    series.Labels(),
		Yields:    series.Yields(),
		SlopeText: slopeText,
	}
}

// SlopeLine always names the pair, e.g. "3-Month to 10-Year Slope: Data not available".
func SlopeLine(m domain.SlopeMetric) string {
	if m.Available() {
		return FormatSlope(m)
	}
	pair := domain.SlopePair{Short: m.ShortLabel, Long: m.LongLabel}
	return pair.Title() + ": " + NotAvailable
}
