package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"laborcli/internal/config"
	"laborcli/internal/dataprocessing"
	apierrors "laborcli/internal/errors"
	"laborcli/internal/infrastructure"
	"laborcli/internal/metrics"
	custommw "laborcli/internal/middleware"
	"laborcli/internal/services"
	"laborcli/internal/store"
	handlers "laborcli/internal/transport/http"
	ws "laborcli/internal/websocket"
	"laborcli/pkg/contracts"
)

// Application is the dependency container for the whole process
type Application struct {
	Config      *config.Config
	Logger      *slog.Logger
	Router      *chi.Mux
	Server      *http.Server
	Store       *store.Store
	DataService *services.DataService
	Hub         *ws.Hub
	Metrics     *metrics.Metrics
}

// New loads configuration and wires every component together. The returned
// application is ready for Run.
func New() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	logger.Info("application starting",
		slog.String("version", contracts.Version),
		slog.Int("port", cfg.Server.Port))

	app := &Application{
		Config:  cfg,
		Logger:  logger,
		Store:   store.New(),
		Hub:     ws.NewHub(logger),
		Metrics: metrics.New(),
	}

	app.DataService = services.NewDataService(
		app.Store,
		dataprocessing.NewPipeline(logger),
		app.Hub,
		app.Metrics,
		logger,
	)

	app.setupRouter()
	app.createServer()

	return app, nil
}

// setupRouter builds the chi middleware chain and mounts every handler
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.StructuredLogger(a.Logger))
	r.Use(custommw.Recoverer(a.Logger))
	r.Use(custommw.Metrics(a.Metrics))

	if a.Config.Security.EnableCORS {
		r.Use(custommw.CORS(a.Config.Security.AllowedOrigins))
	}
	if a.Config.Security.RateLimit.Enabled {
		limiter := custommw.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		)
		r.Use(limiter.Handler)
	}

	errorHandler := apierrors.NewErrorHandler(a.Logger, a.Config.Logging.Development)
	r.NotFound(errorHandler.NotFound)
	r.MethodNotAllowed(errorHandler.MethodNotAllowed)

	dataHandler := handlers.NewDataHandler(a.DataService, a.Config.Upload, a.Logger, errorHandler)
	healthHandler := handlers.NewHealthHandler(contracts.Version, a.Store.Count, a.Hub.ClientCount, a.Logger)
	wsHandler := handlers.NewWebSocketHandler(a.Hub, a.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/data", dataHandler.Routes())
		r.Mount("/health", healthHandler.Routes())
	})
	r.Handle("/metrics", a.Metrics.Handler())
	r.Get("/ws", wsHandler.ServeHTTP)

	a.Router = r
}

// createServer configures the HTTP server with the configured timeouts
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         a.Config.Server.ListenAddr(),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Run starts the websocket hub and the HTTP server, then blocks until the
// context is cancelled or the server fails. Shutdown is graceful within the
// configured timeout.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go a.Hub.Run()
	defer a.Hub.Stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("http server listening", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.Logger.Info("shutting down",
			slog.Duration("timeout", a.Config.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()
	infrastructure.CloseLogFile()
	return err
}
