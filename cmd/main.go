package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rocketshoes-cart/configs"
	"rocketshoes-cart/internal/handlers"
	"rocketshoes-cart/internal/middleware"
	"rocketshoes-cart/internal/repositories"
	"rocketshoes-cart/internal/services"
	"rocketshoes-cart/pkg/auth"
	"rocketshoes-cart/pkg/cache"
	"rocketshoes-cart/pkg/database"
	"rocketshoes-cart/pkg/logger"
	"rocketshoes-cart/pkg/messaging"

	"github.com/gin-gonic/gin"
)

func main() {
	issueToken := flag.String("issue-token", "", "print a signed API token for the given client id and exit")
	flag.Parse()

	// Load configuration
	config, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(config.Log.Env, config.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	jwtManager := auth.NewJWTManager(config.JWT.SecretKey, config.JWT.ExpiryHours)
	if *issueToken != "" {
		token, err := jwtManager.GenerateToken(*issueToken)
		if err != nil {
			log.Fatal("failed to issue token", "error", err)
		}
		fmt.Println(token)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := &database.Database{}
	defer db.Close()

	// Redis backs the redis store and the catalog cache
	redisCache, err := cache.NewRedisCache(ctx, config.Redis.URL, config.Redis.Password, config.Redis.DB)
	if err != nil {
		if config.Store.Driver == "redis" {
			log.Fatal("failed to connect to redis", "error", err)
		}
		log.Warn("redis unavailable, catalog cache disabled", "error", err)
	} else {
		defer redisCache.Close()
	}

	store, err := newCartStore(config, db, redisCache)
	if err != nil {
		log.Fatal("failed to init cart store", "driver", config.Store.Driver, "error", err)
	}

	oracle, err := newStockOracle(ctx, config, db)
	if err != nil {
		log.Fatal("failed to init stock oracle", "driver", config.Oracle.Driver, "error", err)
	}
	if redisCache != nil && config.Oracle.CatalogCacheTTL > 0 {
		oracle = services.NewCachedStockOracle(oracle, redisCache, config.Oracle.CatalogCacheTTL, log)
	}

	var kafkaProducer *messaging.KafkaProducer
	if config.Notifier.Driver == "kafka" || config.Notifier.Driver == "both" {
		kafkaProducer = messaging.NewKafkaProducer(config.Kafka.Brokers)
		defer kafkaProducer.Close()
	}
	notifier, err := newNotifier(config, kafkaProducer, log)
	if err != nil {
		log.Fatal("failed to init notifier", "error", err)
	}

	// Initialize services
	cartService := services.NewCartService(ctx, store, oracle, notifier, config.Store.StorageKey, log)
	catalogService := services.NewCatalogService(oracle, cartService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, config.JWT.Enabled)
	if !config.JWT.Enabled {
		log.Warn("API authentication disabled")
	}

	// Initialize handlers
	cartHandler := handlers.NewCartHandler(cartService)
	productHandler := handlers.NewProductHandler(catalogService)

	gin.SetMode(config.Server.Mode)
	router := gin.New()
	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(log),
		middleware.RecoveryMiddleware(log),
		middleware.CORSMiddleware(),
	)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "rocketshoes-cart",
			"store":   config.Store.Driver,
			"oracle":  config.Oracle.Driver,
		})
	})

	// API routes
	api := router.Group("/api/v1")
	cartHandler.RegisterRoutes(api, authMiddleware)
	productHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:              net.JoinHostPort(config.Server.Host, config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", srv.Addr, "store", config.Store.Driver, "oracle", config.Oracle.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

func newCartStore(config *configs.Config, db *database.Database, redisCache *cache.RedisCache) (repositories.CartStore, error) {
	switch config.Store.Driver {
	case "memory":
		return repositories.NewMemoryStore(), nil
	case "redis":
		return repositories.NewRedisCartStore(redisCache), nil
	case "postgres", "sqlite":
		dsn := config.Database.PostgresURL
		if config.Store.Driver == "sqlite" {
			dsn = config.Database.SQLitePath
		}
		sqlDB, err := database.OpenSQL(config.Store.Driver, dsn, false)
		if err != nil {
			return nil, err
		}
		db.SQL = sqlDB
		if err := repositories.AutoMigrate(sqlDB); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return repositories.NewSQLCartStore(sqlDB), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", config.Store.Driver)
	}
}

func newStockOracle(ctx context.Context, config *configs.Config, db *database.Database) (repositories.StockOracle, error) {
	switch config.Oracle.Driver {
	case "http":
		return services.NewHTTPStockOracle(config.Oracle.BaseURL, config.Oracle.Timeout), nil
	case "mongo":
		mongoDB, err := database.OpenMongo(ctx, config.Database.MongoURL, config.Database.MongoDBName)
		if err != nil {
			return nil, err
		}
		db.MongoDB = mongoDB
		return repositories.NewMongoStockOracle(mongoDB), nil
	default:
		return nil, fmt.Errorf("unknown oracle driver %q", config.Oracle.Driver)
	}
}

func newNotifier(config *configs.Config, producer *messaging.KafkaProducer, log *logger.Logger) (services.Notifier, error) {
	switch config.Notifier.Driver {
	case "log":
		return services.NewLogNotifier(log), nil
	case "kafka":
		return services.NewKafkaNotifier(producer, config.Notifier.Topic, log), nil
	case "both":
		return services.MultiNotifier{
			services.NewLogNotifier(log),
			services.NewKafkaNotifier(producer, config.Notifier.Topic, log),
		}, nil
	default:
		return nil, fmt.Errorf("unknown notifier driver %q", config.Notifier.Driver)
	}
}
