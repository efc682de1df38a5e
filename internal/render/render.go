// Package render turns a domain.Chart into the HTML dashboard page.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"
	"time"

	"treasury-curve/internal/domain"
)

const (
	Title      = "Treasury Yield Curve"
	Disclaimer = "Data sourced from CNBC. This dashboard is for educational and informational purposes only."

	chartWidth   = 800
	chartHeight  = 420
	marginLeft   = 70
	marginRight  = 30
	marginTop    = 20
	marginBottom = 60
	yTickCount   = 5
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Templates returns the parsed page templates; the dashboard is "dashboard.html".
func Templates() *template.Template {
	return templates
}

// Page is the data behind dashboard.html.
type Page struct {
	Title       string
	Notice      string
	Chart       ChartView
	SlopeText   string
	OtherSlopes []string
	FetchedAt   string
	Disclaimer  string
}

type ChartView struct {
	Width, Height            int
	Left, Right, Top, Bottom float64
	CenterX, CenterY         float64
	YLabelX, XLabelY, TitleY float64
	Empty                    bool
	Points                   string
	Markers                  []Marker
	XTicks                   []Tick
	YTicks                   []Tick
}

type Marker struct {
	X, Y  float64
	Label string
	Value string
}

type Tick struct {
	Pos  float64
	Text string
}

// NewPage builds the dashboard page. extra holds the non-primary slope lines,
// notice is shown above the chart when non-empty.
func NewPage(chart domain.Chart, extra []string, fetchedAt time.Time, notice string) Page {
	p := Page{
		Title:       Title,
		Notice:      notice,
		Chart:       NewChartView(chart.Labels, chart.Yields),
		SlopeText:   chart.SlopeText,
		OtherSlopes: extra,
		Disclaimer:  Disclaimer,
	}
	if !fetchedAt.IsZero() {
		p.FetchedAt = fetchedAt.UTC().Format("2006-01-02 15:04:05 UTC")
	}
	return p
}

// NewChartView lays out a category line chart: one x slot per label, in the
// given order, with the y axis spanning the yield range.
func NewChartView(labels []string, yields []float64) ChartView {
	v := ChartView{
		Width:  chartWidth,
		Height: chartHeight,
		Left:   marginLeft,
		Right:  chartWidth - marginRight,
		Top:    marginTop,
		Bottom: chartHeight - marginBottom,
	}
	v.CenterX = (v.Left + v.Right) / 2
	v.CenterY = (v.Top + v.Bottom) / 2
	v.YLabelX = v.Left - 8
	v.XLabelY = v.Bottom + 18
	v.TitleY = chartHeight - 8

	n := len(labels)
	if len(yields) < n {
		n = len(yields)
	}
	if n == 0 {
		v.Empty = true
		return v
	}

	lo, hi := yieldRange(yields[:n])
	xAt := func(i int) float64 {
		if n == 1 {
			return v.CenterX
		}
		return v.Left + float64(i)*(v.Right-v.Left)/float64(n-1)
	}
	yAt := func(y float64) float64 {
		return v.Bottom - (y-lo)/(hi-lo)*(v.Bottom-v.Top)
	}

	points := make([]string, 0, n)
	for i := 0; i < n; i++ {
		x, y := round2(xAt(i)), round2(yAt(yields[i]))
		points = append(points, formatCoord(x)+","+formatCoord(y))
		v.Markers = append(v.Markers, Marker{X: x, Y: y, Label: labels[i], Value: FormatYield(yields[i])})
		v.XTicks = append(v.XTicks, Tick{Pos: x, Text: labels[i]})
	}
	v.Points = strings.Join(points, " ")

	for i := 0; i <= yTickCount; i++ {
		val := lo + (hi-lo)*float64(i)/yTickCount
		v.YTicks = append(v.YTicks, Tick{Pos: round2(yAt(val)), Text: FormatYield(val)})
	}
	return v
}

// FormatYield shows a decimal fraction as a percentage, 0.0425 -> "4.25%".
func FormatYield(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}

// yieldRange pads the min/max so a flat curve still has a visible axis.
func yieldRange(yields []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, y := range yields {
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 0.0025
	}
	return lo - pad, hi + pad
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
