package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"treasury-curve/internal/curve"
	"treasury-curve/internal/domain"
	"treasury-curve/internal/service"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

func scenarioQuotes() []domain.RawQuote {
	return []domain.RawQuote{
		{Symbol: "US2Y", Last: "4.50%"},
		{Symbol: "US10Y", Last: "4.10%"},
		{Symbol: "USX", Last: "9.99%"},
	}
}

func TestCurveService_RefreshFetchesOnceForSeriesAndSlope(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := NewMockQuoteFetcher(ctrl)

	// Arrange: the fetcher may be called exactly once per refresh.
	fetcher.EXPECT().
		FetchBondQuotes(gomock.Any()).
		Return(scenarioQuotes(), nil).
		Times(1)

	svc := service.NewCurveService(testTracer, fetcher, nil, "US", []domain.SlopePair{domain.DefaultSlopePair})

	// Act
	snap, err := svc.Refresh(t.Context())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"US2Y", "US10Y", "USX"}, snap.Series.Labels())
	assert.InDelta(t, 0.0999, snap.Series[2].YieldFraction, 1e-9)
	require.Len(t, snap.Slopes, 1)
	require.True(t, snap.Slopes[0].Available())
	assert.InDelta(t, -0.40, *snap.Slopes[0].ValuePercent, 1e-9)
	assert.Equal(t, "2s10s", snap.Slopes[0].Name)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestCurveService_RefreshSurfacesFetchError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := NewMockQuoteFetcher(ctrl)
	upstream := errors.New("connection reset")
	fetcher.EXPECT().FetchBondQuotes(gomock.Any()).Return(nil, upstream)

	svc := service.NewCurveService(testTracer, fetcher, nil, "US", nil)

	snap, err := svc.Refresh(t.Context())
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, service.ErrFetch)
	assert.ErrorIs(t, err, upstream)
}

func TestCurveService_RefreshSkipsMalformed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := NewMockQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchBondQuotes(gomock.Any()).Return([]domain.RawQuote{
		{Symbol: "US2Y", Last: "bad%"},
		{Symbol: "US10Y", Last: "4.10%"},
	}, nil)

	svc := service.NewCurveService(testTracer, fetcher, nil, "US", nil)

	snap, err := svc.Refresh(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"US10Y"}, snap.Series.Labels())
	require.Len(t, snap.Skipped, 1)
	assert.Equal(t, "US2Y", snap.Skipped[0].Symbol)
	assert.False(t, snap.PrimarySlope().Available())
}

func TestCurveService_RefreshEmptyInput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := NewMockQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchBondQuotes(gomock.Any()).Return([]domain.RawQuote{}, nil)

	svc := service.NewCurveService(testTracer, fetcher, nil, "US", nil)

	snap, err := svc.Refresh(t.Context())
	require.NoError(t, err)
	assert.Empty(t, snap.Series)
	require.Len(t, snap.Slopes, len(domain.DefaultSlopePairs))
	for _, m := range snap.Slopes {
		assert.False(t, m.Available())
	}
}

func TestCurveService_RefreshRejectsOverlap(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := NewMockQuoteFetcher(ctrl)
	lock := NewMockRefreshLock(ctrl)

	lock.EXPECT().TryAcquire(gomock.Any()).Return(nil, false, nil)
	fetcher.EXPECT().FetchBondQuotes(gomock.Any()).Times(0)

	svc := service.NewCurveService(testTracer, fetcher, lock, "US", nil)

	_, err := svc.Refresh(t.Context())
	assert.ErrorIs(t, err, service.ErrRefreshInProgress)
}

func TestCurveService_RefreshReleasesLock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := NewMockQuoteFetcher(ctrl)
	lock := NewMockRefreshLock(ctrl)

	released := 0
	lock.EXPECT().TryAcquire(gomock.Any()).Return(func() { released++ }, true, nil).Times(2)
	gomock.InOrder(
		fetcher.EXPECT().FetchBondQuotes(gomock.Any()).Return(scenarioQuotes(), nil),
		fetcher.EXPECT().FetchBondQuotes(gomock.Any()).Return(nil, errors.New("boom")),
	)

	svc := service.NewCurveService(testTracer, fetcher, lock, "US", nil)

	_, err := svc.Refresh(t.Context())
	require.NoError(t, err)
	_, err = svc.Refresh(t.Context())
	require.Error(t, err)
	assert.Equal(t, 2, released, "lock must be released on success and on failure")
}

func TestCurveService_RefreshContinuesWhenLockBackendFails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := NewMockQuoteFetcher(ctrl)
	lock := NewMockRefreshLock(ctrl)

	lock.EXPECT().TryAcquire(gomock.Any()).Return(nil, false, errors.New("redis down"))
	fetcher.EXPECT().FetchBondQuotes(gomock.Any()).Return(scenarioQuotes(), nil)

	svc := service.NewCurveService(testTracer, fetcher, lock, "US", nil)

	snap, err := svc.Refresh(t.Context())
	require.NoError(t, err)
	assert.Len(t, snap.Series, 3)
}

func TestCurveService_Chart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := NewMockQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchBondQuotes(gomock.Any()).Return(scenarioQuotes(), nil)

	svc := service.NewCurveService(testTracer, fetcher, nil, "US", nil)

	chart, snap, err := svc.Chart(t.Context())
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, len(chart.Labels), len(chart.Yields))
	assert.Equal(t, "2-Year to 10-Year Slope: -0.40%", chart.SlopeText)
}

func TestCurveService_ChartShellOnFetchError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	fetcher := NewMockQuoteFetcher(ctrl)
	fetcher.EXPECT().FetchBondQuotes(gomock.Any()).Return(nil, errors.New("offline"))

	svc := service.NewCurveService(testTracer, fetcher, nil, "US", nil)

	chart, snap, err := svc.Chart(context.Background())
	require.ErrorIs(t, err, service.ErrFetch)
	assert.Nil(t, snap)
	assert.Empty(t, chart.Labels)
	assert.Empty(t, chart.Yields)
	assert.Equal(t, curve.NotAvailable, chart.SlopeText)
}

func TestCurveService_PairsDefaultAndCopy(t *testing.T) {
	t.Parallel()

	svc := service.NewCurveService(testTracer, nil, nil, "US", nil)
	pairs := svc.Pairs()
	require.Equal(t, domain.DefaultSlopePairs, pairs)

	pairs[0].Short = "mutated"
	assert.Equal(t, "US2Y", svc.Pairs()[0].Short)
}
