package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront-order-service/docs"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/app"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/handler"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/inventory"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/repo"
	"github.com/SergeyBogomolovv/storefront-order-service/internal/service"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Storefront Order Service API
// @version         1.0
// @description     Заказы витрины: создание, оплата, доставка и отмена с резервированием товаров на складе
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	panicIfErr("failed to migrate db", postgres.Migrate(context.Background(), db))

	orderRepo := repo.NewOrderRepo(db)
	productRepo := repo.NewProductRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	prometheus.MustRegister(cache.NewSizeGauge(orderCache))

	ledger := inventory.NewLedger(logger, txManager, productRepo)
	orderService := service.NewOrderService(logger, txManager, orderRepo, ledger, orderCache)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.WarmUp})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
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

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	if a.count == 0 {
		return nil
	}
	return a.svc.WarmUpCache(ctx, a.count)
}
