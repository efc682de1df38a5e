package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"treasury-curve/internal/cache"
	"treasury-curve/internal/config"
	"treasury-curve/internal/provider"
	"treasury-curve/internal/service"
	"treasury-curve/pkg/tracing"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/trace"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initRedisFunc  = cache.InitRedis
	initTracerFunc = tracing.InitTracer
	newFetcherFunc = func(cfg *config.Config, tracer trace.Tracer) service.QuoteFetcher {
		return provider.NewCNBCProvider(tracer, cfg.CNBCBaseURL, cfg.CurveSymbols,
			time.Duration(cfg.FetchTimeoutSecs)*time.Second)
	}
	runStdioFunc = func(ctx context.Context, server *mcp.Server) error {
		return server.Run(ctx, &mcp.StdioTransport{})
	}
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
)

func main() {
	loadEnvFunc()
	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	os.Setenv("REDIS_URL", cfg.RedisURL)
	initRedisFunc(ctx)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	var lock service.RefreshLock
	if cache.Client != nil {
		lock = cache.NewRedisLock(cache.Client, cache.DefaultRefreshLockKey,
			time.Duration(cfg.RefreshLockTTLSecs)*time.Second)
	}
	curves := service.NewCurveService(tracer, newFetcherFunc(cfg, tracer), lock, cfg.CurvePrefix, cfg.SlopePairs)
	server := newMCPServer(curves)

	if cfg.MCPTransport == "stdio" {
		// stdout carries the protocol; log goes to stderr.
		if err := runStdioFunc(ctx, server); err != nil {
			log.Printf("MCP stdio server stopped: %v", err)
		}
		return
	}

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.MCPHTTPBind, cfg.MCPHTTPPort),
		Handler: mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return server
		}, nil),
	}

	go func() {
		log.Printf("MCP HTTP server listening on %s", srv.Addr)
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down MCP server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Printf("MCP server shutdown error: %v", err)
	}

	log.Println("MCP server exited")
}
