// Package server initializes and runs the application: it selects the
// storage backend, wires the core services to their collaborators, and
// starts the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rwi001/Valentine-Funs/internal/logging"
	"github.com/rwi001/Valentine-Funs/internal/server/config"
	"github.com/rwi001/Valentine-Funs/internal/server/gateway"
	"github.com/rwi001/Valentine-Funs/internal/server/httpapi"
	"github.com/rwi001/Valentine-Funs/internal/server/notifier"
	"github.com/rwi001/Valentine-Funs/internal/server/repositories/repomanager"
	"github.com/rwi001/Valentine-Funs/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	// Storage mode is fixed here, once, for the process lifetime.
	store := repomanager.Select(ctx, cfg.DatabaseDSN, cfg.DatabaseName, logger)

	var n notifier.Notifier
	if cfg.MailerConfigured() {
		n = notifier.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	} else {
		n = notifier.NewLogNotifier(logger)
	}

	var ledger gateway.Ledger
	if cfg.GatewayConfigured() {
		ledger = gateway.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	} else {
		logger.Warn(ctx, "payment gateway not configured, running in mock mode")
	}

	otp := services.NewOTPService(store.Users(), n, cfg, logger)
	billing := services.NewBillingService(store.Users(), store.Payments(), ledger, cfg, logger)

	handler := httpapi.NewHandler(otp, billing, store, logger)
	server := httpapi.NewServer(cfg.Addr, handler, logger)

	return &App{config: cfg, logger: logger, store: store, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage_durable", app.store.Durable())

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.store.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "store close error", "error", err.Error())
	}
}
