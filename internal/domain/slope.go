package domain

import (
	"fmt"
	"strings"
)

// SlopeMetric is the difference long - short in percentage points.
// A nil ValuePercent means at least one endpoint was missing from the fetch.
type SlopeMetric struct {
	Name         string   `json:"name"`
	ShortLabel   string   `json:"short"`
	LongLabel    string   `json:"long"`
	ValuePercent *float64 `json:"value_percent"`
}

// Available reports whether both endpoints were present and the value was computed.
func (m SlopeMetric) Available() bool {
	return m.ValuePercent != nil
}

// SlopePair names two maturities to compare.
type SlopePair struct {
	Name  string `json:"name"`
	Short string `json:"short"`
	Long  string `json:"long"`
}

// Title is the human heading for the pair, e.g. "2-Year to 10-Year Slope".
func (p SlopePair) Title() string {
	return fmt.Sprintf("%s to %s Slope", MaturityName(p.Short), MaturityName(p.Long))
}

// DefaultSlopePair is the 2s10s spread.
var DefaultSlopePair = SlopePair{Name: "2s10s", Short: "US2Y", Long: "US10Y"}

// DefaultSlopePairs is what the dashboard shows when SLOPE_PAIRS is unset.
var DefaultSlopePairs = []SlopePair{
	DefaultSlopePair,
	{Name: "3m10y", Short: "US3M", Long: "US10Y"},
}

// TreasuryPrefix is the symbol prefix shared by U.S. Treasury quotes.
const TreasuryPrefix = "US"

// TreasurySymbols is the default set requested from the quote source, short to long.
var TreasurySymbols = []string{
	"US1M", "US2M", "US3M", "US4M", "US6M",
	"US1Y", "US2Y", "US3Y", "US5Y", "US7Y",
	"US10Y", "US20Y", "US30Y",
}

// MaturityName turns a symbol such as "US10Y" or "DE10Y" into "10-Year". The
// leading letters are the issuer prefix, whatever CURVE_PREFIX is. Symbols it
// cannot read are returned unchanged.
func MaturityName(symbol string) string {
	term := strings.TrimLeftFunc(symbol, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	})
	if len(term) < 2 {
		return symbol
	}
	n, unit := term[:len(term)-1], term[len(term)-1]
	for _, r := range n {
		if r < '0' || r > '9' {
			return symbol
		}
	}
	switch unit {
	case 'Y':
		return n + "-Year"
	case 'M':
		return n + "-Month"
	default:
		return symbol
	}
}
