package main

import (
	"context"
	"os"
	"testing"
	"time"

	"treasury-curve/internal/config"
	"treasury-curve/internal/domain"

	"github.com/charmbracelet/ssh"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestMainBootstrap(t *testing.T) {
	restore := stubSSHDeps()
	defer restore()

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}
}

func TestNewCurveServiceUsesConfiguredPairs(t *testing.T) {
	cfg := &config.Config{
		CurvePrefix:        "US",
		CurveSymbols:       []string{"US2Y", "US10Y"},
		SlopePairs:         []domain.SlopePair{{Name: "x", Short: "US2Y", Long: "US10Y"}},
		FetchTimeoutSecs:   1,
		RefreshLockTTLSecs: 1,
	}
	svc := newCurveService(cfg, trace.NewNoopTracerProvider().Tracer("test"))
	if pairs := svc.Pairs(); len(pairs) != 1 || pairs[0].Name != "x" {
		t.Fatalf("unexpected pairs: %+v", pairs)
	}
}

func stubSSHDeps() func() {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origInitRedis := initRedisFunc
	origInitTracer := initTracerFunc
	origNewWishServer := newWishServerFunc
	origSetupSignal := setupSignalNotify
	origWait := waitForSignalFunc

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config {
		return &config.Config{
			SSHPort:          2222,
			SSHHostKeyPath:   ".ssh/test_key",
			CurvePrefix:      "US",
			FetchTimeoutSecs: 1,
		}
	}
	initRedisFunc = func(context.Context) {}
	initTracerFunc = func(ctx context.Context) (*sdktrace.TracerProvider, trace.Tracer, error) {
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	newWishServerFunc = func(ops ...ssh.Option) (*ssh.Server, error) {
		return nil, nil
	}
	setupSignalNotify = func(c chan<- os.Signal, sig ...os.Signal) {}
	waitForSignalFunc = func(<-chan os.Signal) {}

	return func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		initRedisFunc = origInitRedis
		initTracerFunc = origInitTracer
		newWishServerFunc = origNewWishServer
		setupSignalNotify = origSetupSignal
		waitForSignalFunc = origWait
	}
}
