package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/compose-demo/backend-api/internal/config"
	"github.com/compose-demo/backend-api/internal/http/health"
	"github.com/compose-demo/backend-api/internal/http/routes"
	applog "github.com/compose-demo/backend-api/internal/platform/logging"
	appmiddleware "github.com/compose-demo/backend-api/internal/platform/middleware"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func newRouter(cfg config.Config) chi.Router {
	router := chi.NewRouter()

	// Base middleware stack. Unknown paths keep chi's default 404 body.
	router.Use(
		appmiddleware.Security(config.DocsPath),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		appmiddleware.Recoverer(),
	)
	// Innermost: rejections must be access-logged with the request-scoped
	// logger already in context.
	if cfg.BodyParsing {
		router.Use(appmiddleware.BodyParser())
	}

	router.Get("/healthz", health.Handler)

	humaCfg := huma.DefaultConfig("Backend API", Version)
	humaCfg.DocsPath = config.DocsPath
	// The default config injects a $schema link into every JSON body;
	// payloads must carry only the modeled fields.
	humaCfg.Transformers = nil
	api := humachi.New(router, humaCfg)
	routes.Register(api)

	return router
}

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg := config.Load()
	router := newRouter(cfg)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.Bool("bodyParsing", cfg.BodyParsing),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}
