package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/app"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/auth"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/config"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/events"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/handler"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/postgres"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/repo"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/service"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/cache"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

type cacheBackend interface {
	service.Cache
	app.Starter
}

// @title           Herbal Pharmacy Checkout API
// @version         1.0
// @description     Catalog, cart, checkout, order and payment API
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.AutoMigrate {
		panicIfErr("failed to migrate db", postgres.Migrate(context.Background(), db))
		logger.Info("schema applied")
	}

	txManager := trm.NewManager(db)
	productRepo := repo.NewProductRepo(db)
	cartRepo := repo.NewCartRepo(db)
	orderRepo := repo.NewOrderRepo(db)

	var (
		appCache cacheBackend
		closers  []app.Closer
	)
	switch conf.Cache.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		redisCache := cache.NewRedisCache(logger, client, "pharmacy:", conf.Cache.TTL)
		appCache = redisCache
		closers = append(closers, redisCache)
	default:
		appCache = cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	}

	var publisher interface {
		service.EventPublisher
		app.Closer
	}
	if conf.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(logger, conf.Kafka)
	} else {
		publisher = events.NewLogPublisher(logger)
	}
	closers = append(closers, publisher)

	promotionService := service.NewPromotionService(logger, repo.NewPromotionRepo(db))
	paymentService := service.NewPaymentService(
		logger, txManager, repo.NewPaymentRepo(db), orderRepo, appCache, publisher, conf.Payments.BaseURL,
	)
	orderService := service.NewOrderService(
		logger,
		txManager,
		service.OrderRepos{
			Orders:    orderRepo,
			Products:  productRepo,
			Cart:      cartRepo,
			Addresses: repo.NewAddressRepo(db),
		},
		promotionService,
		paymentService,
		service.ShippingPolicy{
			Fee:           conf.Checkout.ShippingFee,
			FreeThreshold: conf.Checkout.FreeShippingThreshold,
		},
		appCache,
		publisher,
	)
	catalogService := service.NewCatalogService(logger, productRepo, appCache)
	cartService := service.NewCartService(logger, cartRepo, productRepo)

	handler.RegisterMetrics(prometheus.DefaultRegisterer)

	application := app.New(logger, conf, auth.NewTokens(conf.JWT), prometheus.DefaultGatherer)

	application.SetHTTPHandlers(
		handler.NewCatalogHandler(logger, catalogService),
		handler.NewCartHandler(logger, cartService),
		handler.NewPromotionHandler(logger, promotionService),
		handler.NewOrderHandler(logger, orderService),
		handler.NewPaymentHandler(logger, paymentService),
	)
	if conf.Kafka.Enabled {
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, paymentService))
	}
	application.SetStarters(appCache)
	application.SetClosers(closers...)
	application.SetHealthChecks(db.PingContext)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
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
