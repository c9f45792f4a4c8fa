package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/furniture-resale/docs"
	"github.com/SergeyBogomolovv/furniture-resale/internal/app"
	"github.com/SergeyBogomolovv/furniture-resale/internal/auth"
	"github.com/SergeyBogomolovv/furniture-resale/internal/config"
	"github.com/SergeyBogomolovv/furniture-resale/internal/handler"
	"github.com/SergeyBogomolovv/furniture-resale/internal/middleware"
	"github.com/SergeyBogomolovv/furniture-resale/internal/notify"
	"github.com/SergeyBogomolovv/furniture-resale/internal/postgres"
	"github.com/SergeyBogomolovv/furniture-resale/internal/redisclient"
	"github.com/SergeyBogomolovv/furniture-resale/internal/repo"
	"github.com/SergeyBogomolovv/furniture-resale/internal/service"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/cache"
	"github.com/SergeyBogomolovv/furniture-resale/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Furniture Resale Back Office API
// @version         1.0
// @description     Документация HTTP API: витрина, заказы, возвраты, чаты с дилерами и аналитика
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres, logger)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)

	var closers []io.Closer

	var entityCache startableCache
	if conf.Redis.Enabled {
		client, err := redisclient.New(conf.Redis)
		panicIfErr("failed to connect to redis", err)
		closers = append(closers, client)
		entityCache = cache.NewRedisCache(logger, client, conf.Redis.Prefix, conf.Cache.TTL)
		logger.Info("redis connected")
	} else {
		entityCache = cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	}

	notifier := notify.NewKafkaNotifier(conf.Kafka)
	closers = append(closers, notifier)

	issuer := auth.NewIssuer(conf.Auth.JWTSecret, conf.Auth.TokenTTL)

	productService := service.NewProductService(logger, pgRepo, entityCache)
	orderService := service.NewOrderService(logger, txManager, pgRepo, pgRepo, productService, entityCache, notifier, conf.Orders.ShippingFee)
	returnService := service.NewReturnService(logger, txManager, pgRepo, pgRepo, pgRepo, entityCache, notifier)
	chatService := service.NewChatService(logger, txManager, pgRepo, pgRepo, pgRepo, notifier)
	userService := service.NewUserService(logger, pgRepo, issuer)
	analyticsService := service.NewAnalyticsService(logger, pgRepo, conf.Analytics)

	service.RegisterMetrics()
	handler.RegisterMetrics()
	cache.RegisterMetrics(conf.Cache.Driver, entityCache)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)

	app := app.New(logger, conf, middleware.Authenticate(issuer, userService))

	app.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewReturnHandler(logger, returnService),
		handler.NewChatHandler(logger, chatService),
		handler.NewProductHandler(logger, productService),
		handler.NewUserHandler(logger, userService),
		handler.NewAnalyticsHandler(logger, analyticsService),
	)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(entityCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})
	app.SetClosers(closers...)

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

type startableCache interface {
	service.Cache
	cache.StatsProvider
	Start(ctx context.Context) error
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
