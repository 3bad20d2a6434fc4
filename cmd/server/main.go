package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"google.golang.org/api/option"

	"basegraph.app/growthplan/common/id"
	"basegraph.app/growthplan/common/logger"
	"basegraph.app/growthplan/common/otel"
	"basegraph.app/growthplan/core/config"
	"basegraph.app/growthplan/core/db"
	"basegraph.app/growthplan/internal/http/middleware"
	httprouter "basegraph.app/growthplan/internal/http/router"
	"basegraph.app/growthplan/internal/notify"
	"basegraph.app/growthplan/internal/service"
	"basegraph.app/growthplan/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// The production logger bridges to the OTel log provider, so OTel comes first.
	telemetry, err := otel.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "growthplan starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	// Cleanups close the redis and pubsub clients without waiting on notification goroutines
	// still in flight. A send that loses its client fails and is only logged.
	var cleanups []func()
	defer func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}()
	exit := func(msg string, err error) {
		slog.ErrorContext(ctx, msg, "error", err)
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
		os.Exit(1)
	}

	checks := map[string]httprouter.ReadinessCheck{}

	var redisClient *redis.Client
	if cfg.NeedsRedis() {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			exit("failed to parse redis url", err)
		}
		redisClient = redis.NewClient(redisOpts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			exit("failed to connect to redis", err)
		}
		cleanups = append(cleanups, func() { _ = redisClient.Close() })
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		slog.InfoContext(ctx, "redis connected")
	}

	plans, cleanup, err := newPlanStore(ctx, cfg, checks)
	if err != nil {
		exit("failed to set up plan store", err)
	}
	cleanups = append(cleanups, cleanup)

	statuses := store.NewTaskStatusStore(newKV(cfg, redisClient))

	dispatcher, cleanup, err := newDispatcher(ctx, cfg, redisClient)
	if err != nil {
		exit("failed to set up notifier", err)
	}
	cleanups = append(cleanups, cleanup)

	services := service.NewServices(plans, statuses, dispatcher, service.PlanServiceConfig{
		SimulatedLatency: cfg.Planner.SimulatedLatency,
		NotifyTimeout:    cfg.Notify.Timeout,
		DefaultAddress:   cfg.Notify.DefaultAddress,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, checks)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func gcpOptions(cfg config.Config) []option.ClientOption {
	if cfg.GCP.CredentialsFile == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(cfg.GCP.CredentialsFile)}
}

func newPlanStore(ctx context.Context, cfg config.Config, checks map[string]httprouter.ReadinessCheck) (store.PlanStore, func(), error) {
	switch cfg.Store.PlanBackend {
	case config.PlanBackendFirestore:
		client, err := firestore.NewClient(ctx, cfg.GCP.ProjectID, gcpOptions(cfg)...)
		if err != nil {
			return nil, nil, fmt.Errorf("creating firestore client: %w", err)
		}
		slog.InfoContext(ctx, "firestore plan store ready", "collection", cfg.Store.FirestoreCollection)
		return store.NewFirestorePlanStore(client, cfg.Store.FirestoreCollection), func() { _ = client.Close() }, nil

	case config.PlanBackendMemory:
		slog.WarnContext(ctx, "using in-memory plan store, records are lost on restart")
		return store.NewMemoryPlanStore(), func() {}, nil

	default:
		database, err := db.New(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		checks["postgres"] = database.Ping
		slog.InfoContext(ctx, "database connected")
		return store.NewStores(database.Queries()).Plans(), database.Close, nil
	}
}

func newKV(cfg config.Config, redisClient *redis.Client) store.KV {
	if cfg.Store.TaskStatusBackend == config.TaskStatusBackendRedis {
		return store.NewRedisKV(redisClient)
	}
	return store.NewMemoryKV()
}

func newDispatcher(ctx context.Context, cfg config.Config, redisClient *redis.Client) (notify.Dispatcher, func(), error) {
	switch cfg.Notify.Backend {
	case config.NotifyBackendRedis:
		return notify.NewRedisDispatcher(redisClient, cfg.Notify.Stream, slog.Default()), func() {}, nil

	case config.NotifyBackendPubSub:
		client, err := pubsub.NewClient(ctx, cfg.GCP.ProjectID, gcpOptions(cfg)...)
		if err != nil {
			return nil, nil, fmt.Errorf("creating pubsub client: %w", err)
		}
		dispatcher := notify.NewPubSubDispatcher(client, cfg.Notify.PubSubTopic, slog.Default())
		return dispatcher, func() {
			if s, ok := dispatcher.(interface{ Stop() }); ok {
				s.Stop()
			}
			_ = client.Close()
		}, nil

	case config.NotifyBackendNone:
		return notify.NewNoopDispatcher(), func() {}, nil

	default:
		return notify.NewLogDispatcher(slog.Default()), func() {}, nil
	}
}

func setupRouter(cfg config.Config, services *service.Services, checks map[string]httprouter.ReadinessCheck) *gin.Engine {
	router := gin.New()

	// The access log must run inside the OTel span and after the request id is set.
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.RequestID(cfg.HTTP.TraceHeaderName))
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{ReadinessChecks: checks})

	return router
}

const banner = `
  __ _ _ __ _____      _| |_| |__    _ __ | | __ _ _ __
 / _' | '__/ _ \ \ /\ / / __| '_ \  | '_ \| |/ _' | '_ \
| (_| | | | (_) \ V  V /| |_| | | | | |_) | | (_| | | | |
 \__, |_|  \___/ \_/\_/  \__|_| |_| | .__/|_|\__,_|_| |_|
 |___/                              |_|
`
