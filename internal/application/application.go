package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"deal_factory/internal/config"
	"deal_factory/internal/domain/service/billing"
	"deal_factory/internal/domain/service/property"
	"deal_factory/internal/infrastructure/eventlog"
	"deal_factory/internal/infrastructure/gemini"
	"deal_factory/internal/infrastructure/listing"
	"deal_factory/internal/infrastructure/payments"
	"deal_factory/internal/infrastructure/persistence"
	"deal_factory/internal/server"
	"deal_factory/internal/worker"
	"deal_factory/pkg/application/connectors"
	"deal_factory/pkg/application/modules"
	"deal_factory/pkg/contextx"
	"deal_factory/pkg/httpx"
	"deal_factory/pkg/logx"
	"deal_factory/pkg/metrics"
	"deal_factory/pkg/middlewarex"
	"deal_factory/pkg/probe"
)

func Run(ctx context.Context, log *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log = log.With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	ctx = contextx.WithLogger(ctx, log)

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	masker := logx.NewSensitiveDataMasker()
	httpClient := &http.Client{
		Timeout: cfg.HTTP.ClientTimeout,
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(masker),
			httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
		),
	}

	generator, err := gemini.New(ctx, gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		Temperature: cfg.Gemini.Temperature,
	}, httpClient)
	if err != nil {
		return fmt.Errorf("gemini.New: %w", err)
	}

	stripe := payments.NewStripe(payments.Config{
		SecretKey:     cfg.Stripe.SecretKey,
		PriceID:       cfg.Stripe.PriceID,
		WebhookSecret: cfg.Stripe.WebhookSecret,
		SuccessURL:    cfg.Stripe.SuccessURL,
		CancelURL:     cfg.Stripe.CancelURL,
	}, httpClient)

	checks := map[string]probe.Check{"postgres": db.PingContext}

	var (
		events      billing.EventLog = eventlog.NewMemory(cfg.Redis.EventTTL)
		asynqClient *asynq.Client
		redisOpt    = asynq.RedisClientOpt{
			Addr:     cfg.Redis.Address,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DatabaseNumber,
		}
	)

	if cfg.Redis.Enabled() {
		rc := &connectors.Redis{
			Address:        cfg.Redis.Address,
			Username:       cfg.Redis.Username,
			Password:       cfg.Redis.Password,
			DatabaseNumber: cfg.Redis.DatabaseNumber,
			PoolSize:       cfg.Redis.PoolSize,
		}
		redisClient := rc.Client(ctx)
		events = eventlog.NewRedis(redisClient, cfg.Redis.EventTTL)
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		defer rc.Close(ctx)

		asynqClient = asynq.NewClient(redisOpt)
		defer func() {
			if err := asynqClient.Close(); err != nil {
				log.Error("asynqClient.Close", logx.Error(err))
			}
		}()
	} else {
		log.Warn("redis address is empty, async analysis disabled, webhook event log kept in memory")
	}

	propertyService := property.NewService(
		persistence.NewPropertyRepository(db),
		listing.NewSampleSource(nil),
		generator,
		nil,
	)
	billingService := billing.NewService(
		persistence.NewSubscriberRepository(db),
		stripe,
		events,
	)

	httpMetrics := metrics.NewHTTPCollector("deal_factory", prometheus.DefaultRegisterer)

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		httpMetrics.Middleware,
		middlewarex.Logger(log),
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.HTTP.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.HTTP.LogFieldMaxLen),
	)

	server.NewServer(
		server.NewPropertyServer(propertyService, worker.NewEnqueuer(asynqClient)),
		server.NewBillingServer(billingService),
	).RegisterRoutes(router)

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, &http.Server{
		Addr:              cfg.HTTP.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Checks:        checks,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
	}.Run(ctx, g)

	if cfg.Redis.Enabled() {
		modules.AsynqServer{
			RedisUsername: cfg.Redis.Username,
			RedisPassword: cfg.Redis.Password,
			RedisAddress:  cfg.Redis.Address,
			RedisDB:       cfg.Redis.DatabaseNumber,
		}.Run(ctx, g, modules.AsynqQueues{worker.QueueDefault: 1}, worker.AnalyzeHandler(propertyService))
	}

	if cfg.Telegram.Enabled() {
		if err = runTelegram(ctx, g, cfg, propertyService); err != nil {
			return fmt.Errorf("runTelegram: %w", err)
		}
	} else {
		log.Warn("telegram bot token is empty, scanner and bots disabled")
	}

	if err = g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}
