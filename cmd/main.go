package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mindebamsen/checkout-service/docs"
	"github.com/mindebamsen/checkout-service/internal/app"
	"github.com/mindebamsen/checkout-service/internal/config"
	"github.com/mindebamsen/checkout-service/internal/events"
	"github.com/mindebamsen/checkout-service/internal/handler"
	"github.com/mindebamsen/checkout-service/internal/postgres"
	"github.com/mindebamsen/checkout-service/internal/repo"
	"github.com/mindebamsen/checkout-service/internal/service"
	"github.com/mindebamsen/checkout-service/internal/vipps"
	"github.com/mindebamsen/checkout-service/pkg/cache"
	"github.com/mindebamsen/checkout-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Checkout Service API
// @version         1.0
// @description     Checkout and payment reconciliation HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	sessionCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	provider := vipps.NewClient(logger, conf.Vipps)
	publisher := events.NewPublisher(logger, conf.Kafka)

	checkoutService := service.NewCheckoutService(logger, txManager, orderRepo, provider, publisher, sessionCache, conf.Vipps)
	reconcileService := service.NewReconcileService(logger, orderRepo, provider, publisher)

	httpHandler := handler.NewHTTPHandler(logger, checkoutService, reconcileService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)
	app.SetHTTPHandlers(httpHandler)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	sessionCache.StartJanitor(ctx)

	if err := app.Start(ctx); err != nil {
		logger.Error("application error", slog.Any("error", err))
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
