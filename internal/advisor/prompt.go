package advisor

import (
	"fmt"
	"strings"
	"time"

	"treasury-curve/internal/curve"
	"treasury-curve/internal/domain"
)

const analystBrief = `You describe the U.S. Treasury yield curve for a dashboard. You interpret the data you are given, nothing else.

Rules:
- Say whether the curve is normal, flat, inverted or humped, and where.
- Quote the slope figures exactly as given. A missing slope means the data was unavailable; say so.
- Never fabricate yields for maturities that are not listed.
- Three or four sentences. No investment advice.`

func BuildSystemPrompt(curveContext string) string {
	var sb strings.Builder
	sb.WriteString(analystBrief)
	sb.WriteString("\n\n--- CURVE DATA (as of ")
	sb.WriteString(time.Now().UTC().Format(time.RFC822))
	sb.WriteString(") ---\n")
	sb.WriteString(curveContext)
	return sb.String()
}

func FormatCurveContext(snap *domain.CurveSnapshot) string {
	if snap == nil || len(snap.Series) == 0 {
		return "No curve data currently available."
	}

	var sb strings.Builder
	sb.WriteString("\nYields by maturity:\n")
	for _, p := range snap.Series {
		sb.WriteString(fmt.Sprintf("  %s (%s): %.3f%%\n", p.Label, domain.MaturityName(p.Label), p.YieldFraction*100))
	}

	if len(snap.Slopes) > 0 {
		sb.WriteString("\nSlopes (long minus short, percentage points):\n")
		for _, m := range snap.Slopes {
			sb.WriteString("  " + curve.SlopeLine(m) + "\n")
		}
	}
	return sb.String()
}
