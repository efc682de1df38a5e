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

	"treasury-curve/internal/advisor"
	"treasury-curve/internal/bot"
	"treasury-curve/internal/cache"
	"treasury-curve/internal/config"
	"treasury-curve/internal/handler"
	"treasury-curve/internal/provider"
	"treasury-curve/internal/service"
	"treasury-curve/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "treasury-curve/docs"
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
	newCurveServiceFunc    = service.NewCurveService
	newOpenAIClientFunc    = advisor.NewOpenAIClient
	newCommentaryFunc      = advisor.NewCommentaryService
	startTelegramBotFunc   = bot.StartTelegramBot
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Treasury Yield Curve API
// @version         1.0
// @description     Current U.S. Treasury yields by maturity and key curve slopes.

// @host      localhost:8080
// @BasePath  /
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

	// Redis lock when available, otherwise the service locks in-process.
	var lock service.RefreshLock
	if cache.Client != nil {
		lock = cache.NewRedisLock(cache.Client, cache.DefaultRefreshLockKey,
			time.Duration(cfg.RefreshLockTTLSecs)*time.Second)
	}
	curves := newCurveServiceFunc(tracer, newFetcherFunc(cfg, tracer), lock, cfg.CurvePrefix, cfg.SlopePairs)

	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	startTelegramBotFunc(curves)

	h := newHandlerFunc(tracer, curves)
	if cfg.OpenAIAPIKey != "" {
		h.SetCommentator(newCommentaryFunc(tracer, newOpenAIClientFunc(cfg.OpenAIAPIKey), cfg.OpenAIModel))
		log.Println("Curve commentary enabled")
	}

	r := newRouterFunc()
	r.Use(otelgin.Middleware(tracing.Name()))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		log.Printf("HTTP server listening on %s", srv.Addr)
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
