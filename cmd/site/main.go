package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"mcpsite/docs"
	"mcpsite/internal/config"
	handlers "mcpsite/internal/http/handler"
	"mcpsite/internal/http/middleware"
	"mcpsite/internal/logging"
	"mcpsite/internal/otel"
	"mcpsite/internal/service"
	"mcpsite/internal/site"
)

// @title MCP Site API
// @version 1.0
// @description Static pages and content API for the phase-change materials site.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.Log.Location(), cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize tracing")
	}

	s, err := site.New()
	if err != nil {
		log.WithError(err).Fatal("failed to load page templates")
	}
	pageSvc := service.NewPageService(s)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestID must run first so the logger and error payloads can read it
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithLogger(log))
	app.Use(otelfiber.Middleware())

	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
		if err != nil {
			log.WithError(err).Fatal("failed to register metrics")
		}
		app.Use(promMiddleware.Handler())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	handlers.RegisterRoutes(app, pageSvc, log)

	if cfg.SwaggerEnabled {
		// Set once before serving; the swagger handler reads SwaggerInfo on every request
		docs.Configure(cfg.AppHost, cfg.PublicScheme)
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting_down")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout()); err != nil {
			log.WithError(err).Error("server_shutdown_failed")
		}
	}()

	addr := ":" + cfg.Port
	log.WithFields(logrus.Fields{"addr": addr, "app_host": cfg.AppHost}).Info("server_starting")
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}

	if err := shutdownTracing(context.Background()); err != nil {
		log.WithError(err).Error("tracing_shutdown_failed")
	}
	log.Info("server_stopped")
}
