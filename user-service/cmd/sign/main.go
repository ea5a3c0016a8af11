package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Youhab1/cloud-finalproject/pkg/circuitbreaker"
	"github.com/Youhab1/cloud-finalproject/pkg/config"
	"github.com/Youhab1/cloud-finalproject/pkg/logger"
	"github.com/Youhab1/cloud-finalproject/pkg/mongodb"
	"github.com/Youhab1/cloud-finalproject/pkg/web"
	userhttp "github.com/Youhab1/cloud-finalproject/user-service/internal/http"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/repository"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/service"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const serviceName = "sign-service"

type Config struct {
	Env             string        `mapstructure:"env"`
	LogLevel        string        `mapstructure:"log_level"`
	HTTPPort        string        `mapstructure:"http_port"`
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
		"http_port":        "3000",
		"mongo_uri":        "mongodb://my-mongodb:27017",
		"mongo_db_name":    "mydatabase",
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

	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongodb.Disconnect(ctx, db); err != nil {
			log.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	log.Info("connected to MongoDB", zap.String("database", cfg.MongoDBName))

	breaker := circuitbreaker.New(circuitbreaker.Settings{
		Name:         "users-mongo",
		IsSuccessful: isSuccessfulCall,
	}, log)
	repo := repository.NewMongoRepository(db, breaker)
	if err := repo.CreateIndexes(ctx); err != nil {
		log.Warn("failed to create user indexes", zap.Error(err))
	}

	handler := userhttp.NewSignHandler(service.NewUserService(repo))

	router := web.NewRouter(serviceName, log, cfg.RequestTimeout,
		web.HealthCheck{Name: "mongo_breaker", State: breaker.State})
	handler.Routes(router)

	srv := web.NewServer(serviceName, ":"+cfg.HTTPPort, router, cfg.ShutdownTimeout, log)
	if err := srv.Run(ctx); err != nil {
		log.Error("sign service stopped with error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("sign service stopped")
}

// isSuccessfulCall keeps lookups of unknown users and duplicate signups from
// tripping the breaker.
func isSuccessfulCall(err error) bool {
	return err == nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, mongo.ErrNoDocuments) ||
		mongo.IsDuplicateKeyError(err)
}
