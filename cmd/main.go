package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	api_middleware "github.com/thesrcielos/WordSlide/api/middleware"
	v1 "github.com/thesrcielos/WordSlide/api/v1"
	"github.com/thesrcielos/WordSlide/internal/config"
	"github.com/thesrcielos/WordSlide/internal/events"
	"github.com/thesrcielos/WordSlide/internal/leaderboard"
	"github.com/thesrcielos/WordSlide/internal/logger"
	"github.com/thesrcielos/WordSlide/internal/metrics"
	"github.com/thesrcielos/WordSlide/internal/stats"
	"github.com/thesrcielos/WordSlide/internal/user"
	"github.com/thesrcielos/WordSlide/pkg/db"
	"github.com/thesrcielos/WordSlide/websocket"
	"github.com/thesrcielos/WordSlide/websocket/state"
	"github.com/thesrcielos/WordSlide/websocket/transport"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		log.Fatalf("error initialising logger: %v", err)
	}
	defer logger.Sync()
	logr := logger.Log

	user.ConfigureJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		logr.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close(gdb)
	if err := db.Migrate(gdb, &user.User{}, &stats.GameModeStats{}, &stats.GameSession{}); err != nil {
		logr.Fatalw("failed to migrate schema", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := db.NewRedis(ctx, cfg.Redis, logr)
	if err != nil {
		logr.Fatalw("failed to connect to redis", "error", err)
	}

	registry := state.NewRegistry()
	broadcaster := transport.NewBroadcaster(registry)

	var publisher events.Publisher
	redisCheck := v1.Check(nil)
	if rdb != nil {
		defer rdb.Close()
		broker := events.NewRedisBroker(rdb, broadcaster)
		if err := broker.Subscribe(ctx); err != nil {
			logr.Fatalw("failed to subscribe to stats channel", "error", err)
		}
		publisher = broker
		redisCheck = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		logr.Infow("REDIS_ADDR not set, live feed limited to this instance")
		broker := events.NewLocalBroker(broadcaster)
		defer broker.Close()
		publisher = broker
	}

	statsService := stats.NewStatsService(stats.NewGormStatsRepository(gdb), publisher)
	leaderboardService := leaderboard.NewLeaderboardService(leaderboard.NewGormLeaderboardRepository(gdb))
	userService := user.NewUserService(user.NewGormUserRepository(gdb), bcrypt.DefaultCost)

	metrics.MustRegister(prometheus.DefaultRegisterer)
	origins := api_middleware.NewOriginPolicy(cfg.CORS.AllowedOrigins, cfg.CORS.DefaultOrigin)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = api_middleware.ErrorHandler(logr)

	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())
	e.Use(api_middleware.RequestLogger(logr))
	e.Use(api_middleware.CORS(origins))

	api := e.Group("/api/v1")
	v1.NewStatsHandler(statsService).RegisterRoutes(api.Group("/stats"))
	v1.NewLeaderboardHandler(leaderboardService).RegisterRoutes(api.Group("/leaderboard"))
	v1.NewUserHandler(userService, statsService).
		RegisterRoutes(api.Group("/users"), api_middleware.SetupJWTMiddleware(user.JWTSecret()))

	health := v1.NewHealthHandler(func(ctx context.Context) error { return db.Ping(ctx, gdb) }, redisCheck)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/live", websocket.NewHandler(registry, origins.Allows).Live)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatalw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Infow("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logr.Errorw("server forced to shutdown", "error", err)
	}
}
