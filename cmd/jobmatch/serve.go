package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/metinatakli/jobmatch/internal/app"
	"github.com/metinatakli/jobmatch/internal/config"
	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/metinatakli/jobmatch/internal/mailer"
	"github.com/metinatakli/jobmatch/internal/payment"
	"github.com/metinatakli/jobmatch/internal/storage"
	appvalidator "github.com/metinatakli/jobmatch/internal/validator"
	"github.com/metinatakli/jobmatch/internal/webhook"
	"github.com/spf13/cobra"
	"github.com/stripe/stripe-go/v82"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().Int("port", 3000, "API server port")
	v.BindPFlag("port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config) error {
	bootstrap := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := app.InitTelemetry(ctx, cfg, bootstrap)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer shutdownTelemetry(context.Background())

	logger := app.NewLogger(cfg)

	s, err := openStores(cfg, logger, true)
	if err != nil {
		return err
	}
	defer s.Close()

	stripe.Key = cfg.Stripe.SecretKey

	initiator := payment.NewInitiator(
		s.repos.Payments,
		s.repos.Users,
		s.repos.Jobs,
		logger,
		checkoutProviders(cfg, logger)...)

	objectStore, err := newObjectStore(ctx, cfg)
	if err != nil {
		return err
	}

	application := app.NewApp(
		cfg,
		logger,
		s.db,
		s.redis,
		appvalidator.NewValidator(),
		mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		app.NewSessionManager(s.redis),
		objectStore,
		s.repos,
		initiator,
		s.engine(logger),
		webhookAdapters(cfg)...)

	return application.Serve()
}

func checkoutProviders(cfg *config.Config, logger *slog.Logger) []domain.CheckoutProvider {
	var providers []domain.CheckoutProvider

	if cfg.StripeEnabled() {
		providers = append(providers, payment.NewStripeCheckoutProvider(cfg.Stripe.FailureURL, cfg.Stripe.SuccessURL))
	}

	if cfg.PaystackEnabled() {
		providers = append(providers,
			payment.NewPaystackCheckoutProvider(cfg.Paystack.BaseURL, cfg.Paystack.SecretKey, cfg.Paystack.CallbackURL, cfg.Paystack.PlanCode))
	}

	if len(providers) == 0 && cfg.IsDevelopment() {
		logger.Warn("no payment provider configured, using the mock checkout provider")
		providers = append(providers, payment.NewMockCheckoutProvider(domain.ProviderPaystack, cfg.Paystack.CallbackURL))
	}

	return providers
}

func webhookAdapters(cfg *config.Config) []webhook.Adapter {
	var adapters []webhook.Adapter

	if cfg.Stripe.WebhookSecret != "" {
		adapters = append(adapters, webhook.NewStripeAdapter(cfg.Stripe.WebhookSecret))
	}

	// Paystack signs webhooks with the account secret key.
	if cfg.Paystack.SecretKey != "" {
		adapters = append(adapters, webhook.NewPaystackAdapter(cfg.Paystack.SecretKey))
	}

	return adapters
}

func newObjectStore(ctx context.Context, cfg *config.Config) (storage.ObjectStore, error) {
	if cfg.S3.Bucket == "" {
		return storage.NoopStore{}, nil
	}

	store, err := storage.NewS3Store(ctx, storage.S3Config{
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		Bucket:    cfg.S3.Bucket,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating object store: %w", err)
	}

	return store, nil
}
