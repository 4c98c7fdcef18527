// Command confirmation-mailer serves the payment confirmation endpoint.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/learnhub/paymail/internal"
	"github.com/learnhub/paymail/internal/config"
	"github.com/learnhub/paymail/internal/confirmation"
	"github.com/learnhub/paymail/middlewares"
	"github.com/learnhub/paymail/pkg/logger"
	"github.com/learnhub/paymail/pkg/mailer"
	"github.com/learnhub/paymail/pkg/mailer/resend"
	"github.com/learnhub/paymail/pkg/secrets"
	"github.com/learnhub/paymail/templates"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Service: cfg.Log.Service,
		Level:   logger.ParseLevel(cfg.Log.Level),
		Sentry: logger.SentryConfig{
			DSN:         cfg.Log.SentryDSN,
			Environment: cfg.Log.SentryEnvironment,
			Release:     Version,
			MinLevel:    slog.LevelWarn,
		},
	}, middlewares.RequestIDExtractor())

	svc := confirmation.NewService(
		secrets.Env(),
		resend.NewFactory(cfg.Resend),
		mailer.NewRendererWithConfig(templates.FS, mailer.RendererConfig{ButtonStyle: cfg.Mailer.ButtonStyle}),
		confirmation.Config{
			APIKeySecret:      cfg.Mail.APIKeyEnv,
			Recipient:         cfg.Mail.Recipient,
			DeliverToCustomer: cfg.Mail.DeliverToCustomer,
			ReplyTo:           cfg.Mail.ReplyTo,
			DashboardURL:      cfg.Mail.DashboardURL,
			Mailer:            cfg.Mailer,
		},
	)

	app := internal.New(
		internal.WithCustomLogger(log),
		internal.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.CORS(),
			middlewares.Timeout(cfg.Server.RequestTimeout),
		),
		internal.WithHandlers(confirmation.NewHandler(svc)),
		internal.WithErrorHandler(confirmation.ErrorHandler),
		internal.WithNotFoundHandler(confirmation.NotFound),
		internal.WithMethodNotAllowedHandler(confirmation.MethodNotAllowed),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("resend_api_key", svc.Healthcheck()),
		),
	)

	log.Info("starting server",
		"addr", cfg.Server.Addr,
		"version", Version,
		"deliver_to_customer", cfg.Mail.DeliverToCustomer,
	)

	if err := app.Run(
		cfg.Server.Addr,
		internal.Logger(log),
		internal.ShutdownTimeout(cfg.Server.ShutdownTimeout),
		internal.ServerTimeouts(internal.Timeouts{
			Read:  cfg.Server.ReadTimeout,
			Write: cfg.Server.WriteTimeout,
		}),
		internal.ShutdownHook(logger.Flush),
	); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
