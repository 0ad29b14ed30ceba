// @title           Scriptura API
// @version         1.0
// @description     A scripture reference resolution and search API

// @host      localhost:4000
// @BasePath  /v1

package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"

	"mdobre/scriptura/internal/cache"
	"mdobre/scriptura/internal/data"
	"mdobre/scriptura/internal/ratelimit"
	"mdobre/scriptura/internal/service"
)

var (
	version = "1.0.0"
)

type config struct {
	port              int
	env               string
	corsTrustedOrigin string

	db struct {
		dsn string
	}

	ratelimit struct {
		ipRateLimit int
	}

	redisConfig cache.RedisConfig
}

type application struct {
	config        config
	logger        *slog.Logger
	redis         *cache.RedisClient
	models        data.Models
	ipRateLimiter *ratelimit.RateLimiter
}

func main() {
	var cfg config

	flag.IntVar(&cfg.port, "port", 4000, "API server port")

	flag.StringVar(&cfg.env, "env", "development", "Environment (development|staging|production)")

	flag.StringVar(&cfg.corsTrustedOrigin, "cors-trusted-origin", "*", "Trusted CORS origin")

	flag.StringVar(&cfg.db.dsn, "db-dsn", "", "PostgreSQL DSN")

	flag.IntVar(&cfg.ratelimit.ipRateLimit, "ip-rate-limit", 30, "IP rate limit")

	flag.StringVar(&cfg.redisConfig.Host, "redis-host", "localhost", "Redis Host")
	flag.StringVar(&cfg.redisConfig.Port, "redis-port", "6379", "Redis Port")
	flag.StringVar(&cfg.redisConfig.Password, "redis-password", "", "Redis Password")
	flag.IntVar(&cfg.redisConfig.DB, "redis-db", 0, "Redis DB")
	flag.IntVar(&cfg.redisConfig.PoolSize, "redis-poolsize", 10, "Redis Pool Size")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := openDB(cfg)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("Successful connection to database")

	redisClient, err := cache.NewRedisClient(cfg.redisConfig, 24*time.Hour)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("Successful connection to redis")

	app := application{
		config:        cfg,
		logger:        logger,
		redis:         redisClient,
		models:        data.NewModels(db),
		ipRateLimiter: ratelimit.NewRateLimiter(cfg.ratelimit.ipRateLimit, time.Second),
	}

	services := service.NewServices(app.models, logger, redisClient)
	handlers := NewHandlers(&app, services)

	bt := newBackgroundTasks(app.models.Translations, redisClient, logger)
	go bt.start()

	err = app.serve(handlers)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func openDB(cfg config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
