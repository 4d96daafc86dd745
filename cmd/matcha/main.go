package main

import (
	"context"
	"log/slog"
	"os"

	"matcha/config"
	"matcha/internal/delivery"
	"matcha/internal/delivery/http"
	"matcha/internal/delivery/http/middleware"
	"matcha/internal/delivery/http/router/handler"
	"matcha/internal/domain/constants"
	"matcha/internal/domain/service"
	"matcha/internal/infra/auth"
	logs "matcha/internal/infra/log"
	"matcha/internal/infra/persistence/postgres"
	"matcha/internal/infra/pubsub"
	"matcha/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			pubsub.NewEventPublisher,
		),
	)
}

// newPasswordHasher selects the digest scheme. sha256 stays the default so
// existing password_hash rows keep verifying.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth != nil && cfg.Auth.HashScheme == constants.HashSchemeBcrypt {
		return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	}

	return auth.NewSHA256Hasher()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewHealthHandler,
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
