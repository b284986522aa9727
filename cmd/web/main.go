package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/lotusmall/web-gateway/internal/api/http"
	"github.com/lotusmall/web-gateway/internal/api/http/handlers"
	"github.com/lotusmall/web-gateway/internal/auth"
	"github.com/lotusmall/web-gateway/internal/config"
	"github.com/lotusmall/web-gateway/internal/events"
	"github.com/lotusmall/web-gateway/internal/observability"
	"github.com/lotusmall/web-gateway/internal/persistence"
	"github.com/lotusmall/web-gateway/internal/session"
	"github.com/lotusmall/web-gateway/internal/upstream"
	"github.com/lotusmall/web-gateway/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	sessionStore := session.NewRedisStore(redis.Client, cfg.Session.TTL())
	sessions := session.NewMiddleware(sessionStore, cfg.Session)
	gate := auth.NewGate(metrics)

	api := upstream.NewClient(cfg.Upstream, logger)

	dispatcher := events.NewInMemoryDispatcher()
	worker.NewAuditWorker(dispatcher, logger).Start()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis, api, metrics),
		Auth:      handlers.NewAuthHandler(api, sessions, dispatcher),
		Account:   handlers.NewAccountHandler(api, sessions, dispatcher),
		Listings:  handlers.NewListingsHandler(api),
		Inquiries: handlers.NewInquiriesHandler(api, dispatcher),
		Contact:   handlers.NewContactHandler(api, dispatcher),
		News:      handlers.NewNewsHandler(api),
		Admin:     handlers.NewAdminHandler(api, sessions),
		Sessions:  sessions,
		Gate:      gate,
		Limits:    cfg.Limits,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
