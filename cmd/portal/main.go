package main

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dst-portal/upload-portal/internal/form"
	"github.com/dst-portal/upload-portal/internal/progress"
	"github.com/dst-portal/upload-portal/internal/transport"
	"github.com/dst-portal/upload-portal/internal/tui"
	"github.com/dst-portal/upload-portal/internal/validator"
	"github.com/dst-portal/upload-portal/internal/workflow"
	"github.com/dst-portal/upload-portal/pkg/config"
	"github.com/dst-portal/upload-portal/pkg/i18n"
	"github.com/dst-portal/upload-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if exp, ok := cfg.TokenExpiry(); ok && exp.Before(time.Now()) {
		logr.Warn("api_token_expired", zap.Time("expired_at", exp))
	}

	tr := i18n.New(cfg.Language)
	store := form.NewStore(logr)

	relay := tui.NewProgressRelay()
	presenter := progress.NewSequencer(relay.Publish)
	client := transport.New(cfg.API, cfg.Language, logr)
	ctrl := workflow.NewController(store, validator.New(tr), client, presenter, tr, logr)

	app := tui.NewApp(ctrl, tr, logr)
	program := tea.NewProgram(app, tea.WithAltScreen())
	relay.Attach(program.Send)

	logr.Info("portal_started", zap.String("env", cfg.Env), zap.String("language", cfg.Language))
	if _, err := program.Run(); err != nil {
		logr.Error("portal_exited", zap.Error(err))
		log.Fatalf("portal failed: %v", err)
	}
	presenter.Stop()
	logr.Info("portal_exited")
}
