package main

import (
	"context"
	"log/slog"
	"os"

	"handyhub/config"
	"handyhub/internal/delivery"
	"handyhub/internal/delivery/http"
	"handyhub/internal/delivery/http/middleware"
	"handyhub/internal/delivery/http/router/handler"
	"handyhub/internal/domain/service"
	"handyhub/internal/infra/auth"
	"handyhub/internal/infra/cache"
	logs "handyhub/internal/infra/log"
	"handyhub/internal/infra/mail"
	"handyhub/internal/infra/persistence/postgres"
	"handyhub/internal/usecase/impl"

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
			// Rehydrate runs inside this hook before startServer's, so the
			// revocation cache is warm before the first request arrives.
			impl.RunRevocationMaintenance,
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
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewRoleRepository,
			postgres.NewRevokedTokenRepository,
			postgres.NewPasswordResetRepository,
			postgres.NewServiceRepository,
			postgres.NewBookingRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewRedisTokenCache,
			newMailSender,
		),
	)
}

// newMailSender selects the outbound mail transport from config. The log
// driver keeps local development working without an SMTP relay.
func newMailSender(cfg *config.Config, logger *slog.Logger) service.MailSender {
	if cfg.Mail == nil || cfg.Mail.Driver == "log" {
		return mail.NewLogSender(logger)
	}

	return mail.NewSMTPSender(cfg.Mail)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewVerificationService,
			impl.NewPasswordService,
			impl.NewRevocationService,
			impl.NewBookingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewMarketplaceHandler,
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
