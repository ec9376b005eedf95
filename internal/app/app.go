package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	_ "github.com/SergeyBogomolovv/herbal-pharmacy/docs"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/config"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/middleware"
	"github.com/SergeyBogomolovv/herbal-pharmacy/pkg/utils"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router    chi.Router
	httpSrv   *http.Server
	consumers []Consumer
	starters  []Starter
	closers   []Closer
	checks    []HealthCheck

	consumersDone chan struct{}
}

func New(logger *slog.Logger, cfg config.Config, tokens middleware.TokenVerifier, gatherer prometheus.Gatherer) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(middleware.Logger(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	router.Use(middleware.Authenticate(tokens))
	router.Use(middleware.Metrics)

	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	a := &application{
		logger: logger,
		router: router,
		httpSrv: &http.Server{
			Handler:           router,
			Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
	router.Get("/healthz", a.health)
	return a
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

type Consumer interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(consumers ...Consumer) {
	a.consumers = append(a.consumers, consumers...)
}

// Starter is run once before the server starts accepting requests.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = append(a.starters, starters...)
}

// Closer is released after the server and consumers have stopped.
type Closer interface {
	Close() error
}

func (a *application) SetClosers(closers ...Closer) {
	a.closers = append(a.closers, closers...)
}

type HealthCheck func(ctx context.Context) error

func (a *application) SetHealthChecks(checks ...HealthCheck) {
	a.checks = append(a.checks, checks...)
}

func (a *application) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range a.starters {
		g.Go(func() error { return s.Start(gctx) })
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to run starters: %w", err)
	}

	a.consumersDone = make(chan struct{})
	go func() {
		defer close(a.consumersDone)
		var cg errgroup.Group
		for _, c := range a.consumers {
			cg.Go(func() error {
				c.Consume(ctx)
				return nil
			})
		}
		cg.Wait()
	}()

	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.httpSrv.Addr, err)
	}

	go func() {
		a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("http server stopped", slog.Any("error", err))
		}
	}()

	a.logger.Info("application started")
	return nil
}

const gracefulShutdownTimeout = 5 * time.Second

// Stop expects the context passed to Start to be cancelled already.
func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	if a.consumersDone != nil {
		select {
		case <-a.consumersDone:
		case <-ctx.Done():
			a.logger.Warn("consumers did not stop in time")
		}
	}
	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close consumer: %w", err))
		}
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close: %w", err))
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}

type healthResponse struct {
	Status string `json:"status"`
}

// health
// @Summary  Liveness and dependency check
// @Tags     health
// @Success  200  {object}  healthResponse
// @Failure  503  {object}  healthResponse
// @Router   /healthz [get]
func (a *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for _, check := range a.checks {
		if err := check(ctx); err != nil {
			a.logger.WarnContext(ctx, "health check failed", slog.Any("error", err))
			utils.WriteJSON(w, healthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
			return
		}
	}
	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
