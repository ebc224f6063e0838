package main

import (
	"context"
	"log/slog"
	"os"

	"kindling/config"
	"kindling/internal/delivery"
	"kindling/internal/delivery/http"
	httpmiddleware "kindling/internal/delivery/http/middleware"
	"kindling/internal/delivery/http/router/handler"
	"kindling/internal/delivery/middleware"
	"kindling/internal/infra/auth"
	"kindling/internal/infra/auth/github"
	"kindling/internal/infra/bluesky"
	"kindling/internal/infra/crypto"
	logs "kindling/internal/infra/log"
	"kindling/internal/infra/metrics"
	"kindling/internal/infra/persistence/postgres"
	"kindling/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		prometheus.NewRegistry,
		newRegisterer,
		newGatherer,
		metrics.NewCollector,
		newRecorder,
	)
}

func newRegisterer(registry *prometheus.Registry) prometheus.Registerer {
	return registry
}

func newGatherer(registry *prometheus.Registry) prometheus.Gatherer {
	return registry
}

func newRecorder(collector *metrics.Collector) metrics.Recorder {
	return collector
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSessionRepository,
			postgres.NewIdeaRepository,
			postgres.NewArtifactRepository,
			postgres.NewSettingsRepository,
			postgres.NewConnectedAccountRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSessionTokenService,
			auth.NewJWTService,
			github.NewOAuthService,
			crypto.NewCredentialCipher,
			fx.Annotate(
				bluesky.NewClient,
				fx.ResultTags(`name:"bluesky"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAccountService,
			impl.NewMutationService,
			impl.NewQueryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			httpmiddleware.NewSessionMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSyncHandler,
			handler.NewAuthHandler,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
