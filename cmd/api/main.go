package main

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"microwave-converter/internal/api/handlers"
	"microwave-converter/internal/catalog"
	"microwave-converter/internal/config"
	"microwave-converter/internal/convert"
	"microwave-converter/internal/logger"
	"microwave-converter/internal/server"
)

const (
	configDir       = "configs"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load(configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)

	gin.SetMode(cfg.Mode)

	presets := loadPresets(cfg, log)
	tmpl := loadTemplates(cfg, log)

	var limiter *rate.Limiter
	if cfg.RateLimit.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}

	apiHandler := handlers.NewHandler(convert.New(), presets, tmpl, log, limiter)
	router := apiHandler.InitRoutes()

	// Serve stylesheets and scripts when the directory is present.
	if _, err := os.Stat(cfg.StaticDir); err == nil {
		router.Static("/static", cfg.StaticDir)
	} else {
		log.Infow("static dir not found, skipping", "dir", cfg.StaticDir)
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(router)

	srv := &server.Server{}
	go func() {
		log.Infow("starting server", "port", cfg.Port)
		if err := srv.Run(cfg.Port, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

func loadPresets(cfg *config.Config, log *logger.Logger) *catalog.Presets {
	if cfg.PresetsFile == "" {
		return catalog.Default()
	}
	p, err := catalog.Load(cfg.PresetsFile)
	if err != nil {
		log.Fatalw("error loading presets", "file", cfg.PresetsFile, "err", err)
	}
	log.Infow("loaded presets", "file", cfg.PresetsFile,
		"wattages", len(p.Wattages), "durations", len(p.Durations))
	return p
}

func loadTemplates(cfg *config.Config, log *logger.Logger) *template.Template {
	tmpl, err := template.ParseGlob(cfg.TemplatesGlob)
	if err != nil {
		log.Warnw("templates unavailable, form disabled", "glob", cfg.TemplatesGlob, "err", err)
		return nil
	}
	return tmpl
}

// waitForShutdown blocks until a termination signal arrives, then stops
// the server gracefully.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
