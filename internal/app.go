package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"portfolio/internal/backup"
	"portfolio/internal/controllers"
	"portfolio/internal/providers"
	"portfolio/internal/services"
	"portfolio/internal/storage"
	"portfolio/internal/structures"
	"portfolio/internal/ws"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	WebServer *http.Server

	conf      *structures.Config
	logger    providers.Logger
	hub       *ws.Hub
	scheduler backup.SchedulerInterface
	store     storage.KeyValueStore
}

func NewApp(
	healthController *controllers.HealthController,
	wsHandler *ws.Handler,
	hub *ws.Hub,
	content services.ContentServiceInterface,
	cache providers.CacheProviderInterface,
	scheduler backup.SchedulerInterface,
	store storage.KeyValueStore,
	conf *structures.Config,
	logger providers.Logger,
	router providers.RouterProviderInterface,
	metrics providers.MetricsProviderInterface,
) *App {
	content.Subscribe(func(string) { cache.Purge() })
	content.Subscribe(hub.NotifyContentUpdated)

	// Inner mux: API routes
	apiMux := http.NewServeMux()
	providers.Mount(apiMux, router)

	instrumentedAPI := providers.MetricsMiddleware(metrics, apiMux)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	mux.HandleFunc("GET /ws", wsHandler.HandleContentWS)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	return &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      providers.AccessLogMiddleware(logger, mux),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		conf:      conf,
		logger:    logger,
		hub:       hub,
		scheduler: scheduler,
		store:     store,
	}
}

// Run serves HTTP until SIGINT or SIGTERM, then shuts down and writes a
// final backup.
func (app *App) Run() error {
	logger := app.logger
	logger.Infof(providers.TypeApp, "Starting %s", app.conf.AppName)

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go app.hub.Run(hubCtx)

	app.scheduler.Init()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", app.WebServer.Addr)
		if err := app.WebServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		app.scheduler.Stop()
		return fmt.Errorf("server error: %w", err)
	}

	app.scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.WebServer.Shutdown(ctx); err != nil {
		return err
	}
	stopHub()

	if app.conf.Backup.Enabled {
		if err := app.scheduler.Persist(); err != nil {
			return err
		}
	}
	if err := app.store.Close(); err != nil {
		logger.Warnf(providers.TypeApp, "Unable to close store: %s", err)
	}
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}
