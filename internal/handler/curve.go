package handler

import (
	"errors"
	"net/http"
	"time"

	"treasury-curve/internal/curve"
	"treasury-curve/internal/domain"
	"treasury-curve/internal/render"
	"treasury-curve/internal/service"

	"github.com/gin-gonic/gin"
	ginrender "github.com/gin-gonic/gin/render"
	"go.opentelemetry.io/otel/attribute"
)

// CurveResponse is the JSON shape of a refreshed curve.
type CurveResponse struct {
	Labels    []string              `json:"labels"`
	Yields    []float64             `json:"yields"`
	SlopeText string                `json:"slope_text"`
	Slopes    []domain.SlopeMetric  `json:"slopes"`
	Skipped   []domain.SkippedQuote `json:"skipped"`
	FetchedAt time.Time             `json:"fetched_at"`
}

// Dashboard godoc
// @Summary      Yield curve dashboard
// @Description  Fetches current Treasury quotes and renders the yield curve page. POST /refresh does the same.
// @Tags         dashboard
// @Produce      html
// @Success      200  {string}  string  "HTML page"
// @Failure      409  {string}  string  "HTML page with a refresh-in-progress notice"
// @Failure      502  {string}  string  "HTML page with an empty chart"
// @Router       / [get]
func (h *Handler) Dashboard(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.dashboard")
	defer span.End()

	chart, snap, err := h.curves.Chart(ctx)

	status := http.StatusOK
	notice := ""
	if err != nil {
		span.RecordError(err)
		status, notice = refreshFailure(err)
	}

	var extra []string
	var fetchedAt time.Time
	if snap != nil {
		fetchedAt = snap.FetchedAt
		for i, m := range snap.Slopes {
			if i == 0 {
				continue
			}
			extra = append(extra, curve.SlopeLine(m))
		}
	} else {
		for i, p := range h.curves.Pairs() {
			if i == 0 {
				continue
			}
			extra = append(extra, p.Title()+": "+curve.NotAvailable)
		}
	}
	span.SetAttributes(attribute.Int("series.points", len(chart.Labels)))

	c.Render(status, ginrender.HTML{
		Template: render.Templates(),
		Name:     "dashboard.html",
		Data:     render.NewPage(chart, extra, fetchedAt, notice),
	})
}

// RefreshCurve godoc
// @Summary      Refresh the yield curve
// @Description  Fetches current Treasury quotes once and returns the ordered maturity series and slope metrics
// @Tags         curve
// @Produce      json
// @Success      200  {object}  handler.CurveResponse
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/curve/refresh [post]
func (h *Handler) RefreshCurve(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.refresh-curve")
	defer span.End()

	chart, snap, err := h.curves.Chart(ctx)
	if err != nil {
		span.RecordError(err)
		status, notice := refreshFailure(err)
		c.JSON(status, gin.H{"error": notice, "detail": err.Error(), "slope_text": chart.SlopeText})
		return
	}

	c.JSON(http.StatusOK, CurveResponse{
		Labels:    chart.Labels,
		Yields:    chart.Yields,
		SlopeText: chart.SlopeText,
		Slopes:    snap.Slopes,
		Skipped:   snap.Skipped,
		FetchedAt: snap.FetchedAt,
	})
}

// CurveCommentary godoc
// @Summary      Describe the current yield curve
// @Description  Refreshes the curve and asks the configured language model for a short description of its shape
// @Tags         curve
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/curve/commentary [post]
func (h *Handler) CurveCommentary(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.curve-commentary")
	defer span.End()

	if h.commentary == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "commentary is not configured"})
		return
	}

	snap, err := h.curves.Refresh(ctx)
	if err != nil {
		span.RecordError(err)
		status, notice := refreshFailure(err)
		c.JSON(status, gin.H{"error": notice, "detail": err.Error()})
		return
	}

	text, err := h.commentary.Describe(ctx, snap)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"commentary": text})
}

func refreshFailure(err error) (int, string) {
	if errors.Is(err, service.ErrRefreshInProgress) {
		return http.StatusConflict, "A refresh is already running. Try again in a moment."
	}
	return http.StatusBadGateway, "Market data is currently unavailable."
}
