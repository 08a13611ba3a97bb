package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/seller-orders/internal/app"
	"github.com/SergeyBogomolovv/seller-orders/internal/config"
	"github.com/SergeyBogomolovv/seller-orders/internal/entities"
	"github.com/SergeyBogomolovv/seller-orders/internal/handler"
	"github.com/SergeyBogomolovv/seller-orders/internal/lifecycle"
	"github.com/SergeyBogomolovv/seller-orders/internal/postgres"
	"github.com/SergeyBogomolovv/seller-orders/internal/repo"
	"github.com/SergeyBogomolovv/seller-orders/internal/service"
	"github.com/SergeyBogomolovv/seller-orders/pkg/cache"
	"github.com/SergeyBogomolovv/seller-orders/pkg/trm"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
)

// @title           Seller Orders API
// @version         1.0
// @description     Заказы продавца: дашборд, управление и смена статусов
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	policy, err := lifecycle.ParsePolicy(conf.Orders.Retention)
	panicIfErr("invalid retention policy", err)

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)

	profileCache := cache.NewLRUCache[entities.Profile](conf.Cache.Capacity, conf.Cache.TTL)
	listingCache := cache.NewLRUCache[entities.Listing](conf.Cache.Capacity, conf.Cache.TTL)

	directory := service.NewCachedDirectory(repo.NewDirectoryRepo(db), profileCache)
	catalog := service.NewCachedCatalog(repo.NewCatalogRepo(db), listingCache)
	enricher := service.NewEnricher(logger, directory, catalog, conf.Orders.LookupTimeout)

	orderService := service.NewOrderService(logger, txManager, orderRepo, enricher, policy)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService)

	application := app.New(logger, conf)

	application.SetHTTPHandlers(httpHandler)
	application.SetConsumers(kafkaHandler)

	starters := []app.Starter{profileCache, listingCache}
	if conf.Postgres.MigrationsEnabled {
		starters = append([]app.Starter{migrator{db: db, logger: logger}}, starters...)
	}
	application.SetStarters(starters...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	logger.Info("retention policy", slog.String("policy", string(policy)))
	panicIfErr("failed to start app", application.Start(ctx))

	select {
	case <-ctx.Done():
	case err := <-application.Errors():
		logger.Error("http server failed", slog.Any("error", err))
	}
	panicIfErr("failed to stop app", application.Stop())
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

type migrator struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func (m migrator) Start(ctx context.Context) error {
	if err := postgres.Migrate(ctx, m.db); err != nil {
		return err
	}
	m.logger.Info("migrations applied")
	return nil
}
