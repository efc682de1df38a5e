// Package curve turns raw bond quotes into a plottable yield series and slope metrics.
// Everything here is pure: no I/O, no logging.
package curve

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"treasury-curve/internal/domain"
)

// ErrMalformedQuote is returned when a quote's yield text is not a number.
var ErrMalformedQuote = errors.New("malformed quote")

// InFamily is the series filter: a prefix test over the symbol.
func InFamily(symbol, prefix string) bool {
	return strings.HasPrefix(symbol, prefix)
}

// Lookup returns the first quote whose symbol equals symbol exactly.
func Lookup(quotes []domain.RawQuote, symbol string) (domain.RawQuote, bool) {
	for _, q := range quotes {
		if q.Symbol == symbol {
			return q, true
		}
	}
	return domain.RawQuote{}, false
}

// ParsePercent reads text like " 4.25% " and returns 4.25.
func ParsePercent(last string) (float64, error) {
	s := strings.TrimSpace(last)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedQuote, last)
	}
	return v, nil
}

// Normalize keeps quotes in the prefix family, in input order, with yields as
// decimal fractions. Quotes whose yield cannot be parsed are left out and
// reported in the second return value.
func Normalize(quotes []domain.RawQuote, prefix string) (domain.MaturitySeries, []domain.SkippedQuote) {
	series := make(domain.MaturitySeries, 0, len(quotes))
	var skipped []domain.SkippedQuote

	for _, q := range quotes {
		if !InFamily(q.Symbol, prefix) {
			continue
		}
		pct, err := ParsePercent(q.Last)
		if err != nil {
			skipped = append(skipped, domain.SkippedQuote{Symbol: q.Symbol, Last: q.Last, Reason: err.Error()})
			continue
		}
		series = append(series, domain.MaturityPoint{Label: q.Symbol, YieldFraction: pct / 100})
	}

	return series, skipped
}

// ComputeSlope returns long - short in percentage points. The value is absent
// when either symbol is missing or its yield is malformed. A 0% yield is a
// valid endpoint.
func ComputeSlope(quotes []domain.RawQuote, shortSymbol, longSymbol string) domain.SlopeMetric {
	m := domain.SlopeMetric{ShortLabel: shortSymbol, LongLabel: longSymbol}

	short, ok := lookupPercent(quotes, shortSymbol)
	if !ok {
		return m
	}
	long, ok := lookupPercent(quotes, longSymbol)
	if !ok {
		return m
	}

	v := long - short
	m.ValuePercent = &v
	return m
}

// ComputeSlopes evaluates every pair against the same quotes.
func ComputeSlopes(quotes []domain.RawQuote, pairs []domain.SlopePair) []domain.SlopeMetric {
	out := make([]domain.SlopeMetric, 0, len(pairs))
	for _, p := range pairs {
		m := ComputeSlope(quotes, p.Short, p.Long)
		m.Name = p.Name
		out = append(out, m)
	}
	return out
}

func lookupPercent(quotes []domain.RawQuote, symbol string) (float64, bool) {
	q, ok := Lookup(quotes, symbol)
	if !ok {
		return 0, false
	}
	v, err := ParsePercent(q.Last)
	if err != nil {
		return 0, false
	}
	return v, true
}
