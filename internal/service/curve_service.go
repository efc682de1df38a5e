package service

//go:generate mockgen -package=service_test -destination=mock_curve_service_test.go -source=curve_service.go

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"treasury-curve/internal/curve"
	"treasury-curve/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrFetch wraps any failure of the quote source. Nothing partial is returned with it.
	ErrFetch = errors.New("quote fetch failed")
	// ErrRefreshInProgress is returned when another refresh holds the lock.
	ErrRefreshInProgress = errors.New("refresh already in progress")
)

// QuoteFetcher is the upstream market-data source.
type QuoteFetcher interface {
	FetchBondQuotes(ctx context.Context) ([]domain.RawQuote, error)
}

// RefreshLock admits one refresh at a time.
type RefreshLock interface {
	TryAcquire(ctx context.Context) (release func(), acquired bool, err error)
}

// CurveService runs fetch -> normalize -> slopes once per call.
type CurveService struct {
	tracer  trace.Tracer
	fetcher QuoteFetcher
	lock    RefreshLock
	prefix  string
	pairs   []domain.SlopePair
	now     func() time.Time
}

func NewCurveService(
	tracer trace.Tracer,
	fetcher QuoteFetcher,
	lock RefreshLock,
	prefix string,
	pairs []domain.SlopePair,
) *CurveService {
	if lock == nil {
		lock = NewLocalLock()
	}
	if len(pairs) == 0 {
		pairs = domain.DefaultSlopePairs
	}
	return &CurveService{
		tracer:  tracer,
		fetcher: fetcher,
		lock:    lock,
		prefix:  prefix,
		pairs:   append([]domain.SlopePair(nil), pairs...),
		now:     time.Now,
	}
}

// Pairs returns the slope pairs this service computes, primary first.
func (s *CurveService) Pairs() []domain.SlopePair {
	return append([]domain.SlopePair(nil), s.pairs...)
}

// Refresh fetches quotes once and derives both the series and the slopes from
// that single snapshot.
func (s *CurveService) Refresh(ctx context.Context) (*domain.CurveSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "curve-service.refresh")
	defer span.End()

	release, acquired, err := s.lock.TryAcquire(ctx)
	switch {
	case err != nil:
		log.Printf("refresh lock unavailable, continuing without it: %v", err)
	case !acquired:
		span.SetStatus(codes.Error, ErrRefreshInProgress.Error())
		return nil, ErrRefreshInProgress
	default:
		defer release()
	}

	quotes, err := s.fetcher.FetchBondQuotes(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	series, skipped := curve.Normalize(quotes, s.prefix)
	for _, sq := range skipped {
		log.Printf("skipping quote %s: %s", sq.Symbol, sq.Reason)
	}
	slopes := curve.ComputeSlopes(quotes, s.pairs)

	span.SetAttributes(
		attribute.Int("quotes.fetched", len(quotes)),
		attribute.Int("series.points", len(series)),
		attribute.Int("quotes.skipped", len(skipped)),
	)

	return &domain.CurveSnapshot{
		Series:    series,
		Slopes:    slopes,
		Skipped:   skipped,
		FetchedAt: s.now().UTC(),
	}, nil
}

// Chart runs Refresh and shapes the result for a renderer. On error the chart
// is an empty shell whose slope text reads "Data not available".
func (s *CurveService) Chart(ctx context.Context) (domain.Chart, *domain.CurveSnapshot, error) {
	snap, err := s.Refresh(ctx)
	if err != nil {
		return curve.ToChart(nil, curve.NotAvailable), nil, err
	}
	return curve.ToChart(snap.Series, curve.FormatSlope(snap.PrimarySlope())), snap, nil
}
