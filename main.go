package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/macedodesign/site/config"
	"github.com/macedodesign/site/content"
	"github.com/macedodesign/site/handlers"
	"github.com/macedodesign/site/i18n"
	"github.com/macedodesign/site/logging"
	"github.com/macedodesign/site/models"
)

func main() {
	cfg, err := config.Load(os.Getenv("SITE_CONFIG"), os.Getenv)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := i18n.Validate(); err != nil {
		logger.Fatal("incomplete translations", zap.Error(err))
	}

	// Load case studies for all languages
	langs := make([]string, 0, len(i18n.SupportedLanguages()))
	for _, lang := range i18n.SupportedLanguages() {
		langs = append(langs, string(lang))
	}
	lib, err := models.LoadLibrary(content.Projects, "projects", langs)
	if err != nil {
		logger.Fatal("failed to load case studies", zap.Error(err))
	}
	for _, lang := range i18n.SupportedLanguages() {
		var slugs []string
		for _, p := range i18n.Get(lang).Projects {
			slugs = append(slugs, p.Slug)
		}
		if missing := lib.Missing(string(lang), slugs); len(missing) > 0 {
			logger.Warn("projects without case study", zap.String("lang", string(lang)), zap.Strings("slugs", missing))
		}
		logger.Info("loaded case studies", zap.String("lang", string(lang)), zap.Int("count", len(lib.List(string(lang)))))
	}

	css, err := models.HighlightCSS()
	if err != nil {
		logger.Fatal("failed to build highlight stylesheet", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handlers.Routes(lib, css, logger),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
