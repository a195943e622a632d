package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/config"
	dbpkg "github.com/ClinicaExecutivas/studio-scheduler/internal/db"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/metrics"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/middleware"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/routes"
)

func main() {

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, &logger)

	if err := dbpkg.SeedAdminUser(db, cfg, &logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to bootstrap admin user")
	}

	rdb := initRedis(cfg, &logger)

	metrics.Register()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	routes.RegisterRoutes(r, db, rdb, cfg, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// initRedis devolve nil quando REDIS_ADDR não está configurado; a
// denylist de logout fica desabilitada nesse caso.
func initRedis(cfg *config.Config, logger *zerolog.Logger) *redis.Client {
	if cfg.RedisAddr == "" {
		logger.Warn().Msg("REDIS_ADDR not set, logout denylist disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.RedisPassword,
		DialTimeout: 5 * time.Second,
	})

	return client
}
