package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	c "github.com/Youhab1/cloud-finalproject/cart-service/internal/cache"
	carthttp "github.com/Youhab1/cloud-finalproject/cart-service/internal/http"
	"github.com/Youhab1/cloud-finalproject/cart-service/internal/ledger"
	"github.com/Youhab1/cloud-finalproject/cart-service/internal/ordernum"
	"github.com/Youhab1/cloud-finalproject/cart-service/internal/repository"
	s "github.com/Youhab1/cloud-finalproject/cart-service/internal/service"
	"github.com/Youhab1/cloud-finalproject/pkg/circuitbreaker"
	"github.com/Youhab1/cloud-finalproject/pkg/config"
	"github.com/Youhab1/cloud-finalproject/pkg/logger"
	"github.com/Youhab1/cloud-finalproject/pkg/mongodb"
	"github.com/Youhab1/cloud-finalproject/pkg/web"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const serviceName = "cart-service"

type Config struct {
	Env             string        `mapstructure:"env"`
	LogLevel        string        `mapstructure:"log_level"`
	HTTPPort        string        `mapstructure:"http_port"`
	MongoURI        string        `mapstructure:"mongo_uri"`
	MongoDBName     string        `mapstructure:"mongo_db_name"`
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	CatalogCacheTTL time.Duration `mapstructure:"catalog_cache_ttl"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func loadConfig() (*Config, error) {
	cfg := &Config{}
	err := config.Load(serviceName, map[string]any{
		"env":               "development",
		"log_level":         "info",
		"http_port":         "3700",
		"mongo_uri":         "mongodb://inventory-mongodb:27017",
		"mongo_db_name":     "inventorydb",
		"redis_addr":        "",
		"redis_password":    "",
		"catalog_cache_ttl": "1m",
		"request_timeout":   "30s",
		"shutdown_timeout":  "10s",
	}, cfg)
	return cfg, err
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		// No config yet: log with the defaults.
		logger.MustNew(serviceName, "", "").Fatal("failed to load config", zap.Error(err))
	}

	log := logger.MustNew(serviceName, cfg.Env, cfg.LogLevel)
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Set up MongoDB connection
	mongoDB, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongodb.Disconnect(ctx, mongoDB); err != nil {
			log.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	log.Info("connected to MongoDB", zap.String("database", cfg.MongoDBName))

	breaker := circuitbreaker.New(circuitbreaker.Settings{
		Name:         "cart-catalog-mongo",
		IsSuccessful: func(err error) bool { return err == nil || errors.Is(err, context.Canceled) },
	}, log)
	repo := repository.NewMongoRepository(mongoDB, breaker)

	var cache c.CatalogCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn("redis ping failed, catalog cache disabled", zap.Error(err))
		} else {
			log.Info("redis ping succeeded", zap.String("addr", cfg.RedisAddr))
			cache = c.NewRedisCache(redisClient, cfg.CatalogCacheTTL)
		}
	}

	service := s.NewCartService(ledger.New(), ordernum.New(), repo, cache)
	handler := carthttp.NewCartHandler(service)

	router := web.NewRouter(serviceName, log, cfg.RequestTimeout,
		web.HealthCheck{Name: "mongo_breaker", State: breaker.State})
	handler.Routes(router)

	srv := web.NewServer(serviceName, ":"+cfg.HTTPPort, router, cfg.ShutdownTimeout, log)
	if err := srv.Run(ctx); err != nil {
		log.Error("cart service stopped with error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("cart service stopped")
}
