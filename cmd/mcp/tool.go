package main

import (
	"context"
	"time"

	"treasury-curve/internal/bot"
	"treasury-curve/internal/curve"
	"treasury-curve/internal/domain"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const yieldCurveToolName = "yield_curve"

type curveRefresher interface {
	Refresh(ctx context.Context) (*domain.CurveSnapshot, error)
}

type yieldCurveInput struct{}

type maturityOutput struct {
	Label string  `json:"label" jsonschema:"quote symbol, e.g. US10Y"`
	Yield float64 `json:"yield" jsonschema:"yield as a decimal fraction, 0.0425 is 4.25%"`
}

type slopeOutput struct {
	Name         string   `json:"name"`
	Short        string   `json:"short"`
	Long         string   `json:"long"`
	ValuePercent *float64 `json:"value_percent,omitempty" jsonschema:"long minus short in percentage points, absent when either end is missing"`
	Text         string   `json:"text"`
}

type yieldCurveOutput struct {
	Series    []maturityOutput `json:"series"`
	Slopes    []slopeOutput    `json:"slopes"`
	SlopeText string           `json:"slope_text"`
	Skipped   []string         `json:"skipped,omitempty"`
	FetchedAt string           `json:"fetched_at"`
}

func newMCPServer(curves curveRefresher) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "treasury-curve", Version: "1.0.0"}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        yieldCurveToolName,
		Description: "Fetch current U.S. Treasury yields by maturity, in curve order, with the configured slope metrics.",
	}, yieldCurveHandler(curves))
	return server
}

func yieldCurveHandler(curves curveRefresher) mcp.ToolHandlerFor[yieldCurveInput, yieldCurveOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, _ yieldCurveInput) (*mcp.CallToolResult, yieldCurveOutput, error) {
		snap, err := curves.Refresh(ctx)
		if err != nil {
			return nil, yieldCurveOutput{}, err
		}
		out := toOutput(snap)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: bot.CurveMessage(snap)}},
		}, out, nil
	}
}

func toOutput(snap *domain.CurveSnapshot) yieldCurveOutput {
	out := yieldCurveOutput{
		Series:    make([]maturityOutput, 0, len(snap.Series)),
		Slopes:    make([]slopeOutput, 0, len(snap.Slopes)),
		SlopeText: curve.FormatSlope(snap.PrimarySlope()),
		FetchedAt: snap.FetchedAt.UTC().Format(time.RFC3339),
	}
	for _, p := range snap.Series {
		out.Series = append(out.Series, maturityOutput{Label: p.Label, Yield: p.YieldFraction})
	}
	for _, m := range snap.Slopes {
		out.Slopes = append(out.Slopes, slopeOutput{
			Name:         m.Name,
			Short:        m.ShortLabel,
			Long:         m.LongLabel,
			ValuePercent: m.ValuePercent,
			Text:         curve.SlopeLine(m),
		})
	}
	for _, s := range snap.Skipped {
		out.Skipped = append(out.Skipped, s.Symbol)
	}
	return out
}
