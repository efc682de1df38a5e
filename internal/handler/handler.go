package handler

import (
	"context"
	"net/http"

	"treasury-curve/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// CurveRefresher runs the fetch/normalize/slope pipeline.
type CurveRefresher interface {
	Refresh(ctx context.Context) (*domain.CurveSnapshot, error)
	Chart(ctx context.Context) (domain.Chart, *domain.CurveSnapshot, error)
	Pairs() []domain.SlopePair
}

// Commentator describes a curve snapshot in prose.
type Commentator interface {
	Describe(ctx context.Context, snap *domain.CurveSnapshot) (string, error)
}

type Handler struct {
	tracer     trace.Tracer
	curves     CurveRefresher
	commentary Commentator
}

func New(tracer trace.Tracer, curves CurveRefresher) *Handler {
	return &Handler{
		tracer: tracer,
		curves: curves,
	}
}

// SetCommentator enables POST /api/curve/commentary.
func (h *Handler) SetCommentator(c Commentator) {
	h.commentary = c
}

// Health godoc
// @Summary      Health check
// @Description  Liveness probe. Does not call the quote source.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"slope_pairs": len(h.curves.Pairs()),
		"commentary":  h.commentary != nil,
	})
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/", h.Dashboard)
	r.POST("/refresh", h.Dashboard)
	r.POST("/api/curve/refresh", h.RefreshCurve)
	r.POST("/api/curve/commentary", h.CurveCommentary)
}
