package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	inventoryhttp "github.com/Youhab1/cloud-finalproject/inventory-service/internal/http"
	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/repository"
	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/service"
	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/store"
	"github.com/Youhab1/cloud-finalproject/pkg/circuitbreaker"
	"github.com/Youhab1/cloud-finalproject/pkg/config"
	"github.com/Youhab1/cloud-finalproject/pkg/logger"
	"github.com/Youhab1/cloud-finalproject/pkg/mongodb"
	"github.com/Youhab1/cloud-finalproject/pkg/web"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const serviceName = "inventory-service"

type Config struct {
	Env             string        `mapstructure:"env"`
	LogLevel        string        `mapstructure:"log_level"`
	HTTPPort        string        `mapstructure:"http_port"`
	StoreDriver     string        `mapstructure:"store_driver"`
	SeedFile        string        `mapstructure:"seed_file"`
	MongoURI        string        `mapstructure:"mongo_uri"`
	MongoDBName     string        `mapstructure:"mongo_db_name"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func loadConfig() (*Config, error) {
	cfg := &Config{}
	err := config.Load(serviceName, map[string]any{
		"env":              "development",
		"log_level":        "info",
		"http_port":        "3400",
		"store_driver":     "mongo",
		"seed_file":        "",
		"mongo_uri":        "mongodb://inventory-mongodb:27017",
		"mongo_db_name":    "inventorydb",
		"request_timeout":  "30s",
		"shutdown_timeout": "10s",
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

	repo, checks, closeRepo, err := newRepository(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to set up product store", zap.Error(err))
	}
	defer closeRepo()

	handler := inventoryhttp.NewInventoryHandler(service.NewInventoryService(repo))

	router := web.NewRouter(serviceName, log, cfg.RequestTimeout, checks...)
	handler.Routes(router)

	srv := web.NewServer(serviceName, ":"+cfg.HTTPPort, router, cfg.ShutdownTimeout, log)
	if err := srv.Run(ctx); err != nil {
		log.Error("inventory service stopped with error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("inventory service stopped")
}

// newRepository also returns the health checks of the chosen store.
func newRepository(ctx context.Context, cfg *Config, log *zap.Logger) (repository.ProductRepository, []web.HealthCheck, func(), error) {
	if cfg.StoreDriver == "memory" {
		memStore := store.NewMemoryStore()
		if cfg.SeedFile != "" {
			if err := memStore.LoadFile(cfg.SeedFile); err != nil {
				return nil, nil, nil, err
			}
		}
		log.Info("using in-memory product store", zap.String("seed_file", cfg.SeedFile))
		return memStore, nil, func() {}, nil
	}

	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("connected to inventory MongoDB", zap.String("database", cfg.MongoDBName))

	breaker := circuitbreaker.New(circuitbreaker.Settings{
		Name:         "inventory-mongo",
		IsSuccessful: isSuccessfulRead,
	}, log)
	repo := repository.NewMongoRepository(db, breaker)
	if err := repo.CreateIndexes(ctx); err != nil {
		log.Warn("failed to create product indexes", zap.Error(err))
	}

	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongodb.Disconnect(ctx, db); err != nil {
			log.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}
	checks := []web.HealthCheck{{Name: "mongo_breaker", State: breaker.State}}
	return repo, checks, closeFn, nil
}

// isSuccessfulRead keeps client cancellations from tripping the breaker.
func isSuccessfulRead(err error) bool {
	return err == nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, mongo.ErrNoDocuments)
}
