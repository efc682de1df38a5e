package tui

import (
	"strings"

	"treasury-curve/internal/domain"
	"treasury-curve/internal/render"
)

const (
	barGlyph   = "█"
	minBarArea = 10
)

// RenderBars draws one horizontal bar per maturity, in curve order, scaled
// to the largest yield. Negative yields draw an empty bar.
func RenderBars(series domain.MaturitySeries, width int) string {
	if len(series) == 0 {
		return dimStyle.Render("No data")
	}

	area := width - 20
	if area < minBarArea {
		area = minBarArea
	}

	max := 0.0
	for _, p := range series {
		if p.YieldFraction > max {
			max = p.YieldFraction
		}
	}

	var sb strings.Builder
	for i, p := range series {
		n := 0
		if max > 0 && p.YieldFraction > 0 {
			n = int(p.YieldFraction / max * float64(area))
			if n == 0 {
				n = 1
			}
		}
		sb.WriteString(labelStyle.Render(p.Label))
		sb.WriteString(" ")
		sb.WriteString(barStyle.Render(strings.Repeat(barGlyph, n)))
		sb.WriteString(" ")
		sb.WriteString(valueStyle.Render(render.FormatYield(p.YieldFraction)))
		if i < len(series)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
