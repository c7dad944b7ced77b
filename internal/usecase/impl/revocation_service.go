// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"handyhub/config"
	deliverycontext "handyhub/internal/delivery/context"
	"handyhub/internal/domain/entity"
	domainerrors "handyhub/internal/domain/errors"
	"handyhub/internal/domain/lifecycle"
	"handyhub/internal/domain/repository"
	"handyhub/internal/domain/service"
	"handyhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// revocationService implements the TokenRevoker interface with two layers:
// durable rows in Postgres that survive restarts, and a TTL cache answering
// the per-request lookup. The durable write happens first, so a crash between
// the two layers is repaired by the next Rehydrate rather than leaving a
// revoked token accepted.
type revocationService struct {
	tokenRepo    repository.RevokedTokenRepository
	cache        service.TokenCache
	tokenService service.TokenService
	logger       *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// RevocationServiceParams holds dependencies for revocationService, injected by Fx.
type RevocationServiceParams struct {
	fx.In

	TokenRepo    repository.RevokedTokenRepository
	Cache        service.TokenCache
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewRevocationService is the constructor for revocationService.
func NewRevocationService(params RevocationServiceParams) usecase.TokenRevoker {
	return &revocationService{
		tokenRepo:    params.TokenRepo,
		cache:        params.Cache,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *revocationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Revoke marks a token dead until its natural expiry.
func (srv *revocationService) Revoke(ctx context.Context, token string) error {
	expiresAt, err := srv.tokenService.ExtractExpiry(token)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidToken, "cannot revoke unreadable token")
	}

	now := srv.now()
	ttl := expiresAt.Sub(now)
	if ttl <= 0 {
		// Already dead on expiry grounds alone; nothing to store.
		srv.log(ctx).Debug("Skipping revocation of expired token")

		return nil
	}

	// Durable layer first. If the cache write below is lost, Rehydrate
	// restores it from this row.
	record := &entity.RevokedToken{
		Token:     token,
		RevokedAt: now,
		ExpiresAt: expiresAt,
	}
	if err := srv.tokenRepo.Create(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to persist token revocation", slog.Any("error", err))

		return errors.Wrap(err, "failed to persist token revocation")
	}

	if err := srv.cache.Set(ctx, token, ttl); err != nil {
		srv.log(ctx).Error("Failed to cache token revocation", slog.Any("error", err))

		return errors.Wrap(err, "failed to cache token revocation")
	}

	srv.log(ctx).Info("Token revoked", slog.Time("expiresAt", expiresAt))

	return nil
}

// IsRevoked reports whether the token was revoked. Cache only; the durable
// layer is never consulted on the request path.
func (srv *revocationService) IsRevoked(ctx context.Context, token string) (bool, error) {
	revoked, err := srv.cache.Exists(ctx, token)
	if err != nil {
		return false, errors.Wrap(err, "failed to check token revocation")
	}

	return revoked, nil
}

// Rehydrate rebuilds the fast layer from the durable rows. Runs once during
// startup, before the HTTP server begins accepting requests.
func (srv *revocationService) Rehydrate(ctx context.Context) error {
	now := srv.now()

	records, err := srv.tokenRepo.FindUnexpired(ctx, now)
	if err != nil {
		return errors.Wrap(err, "failed to load revoked tokens for rehydration")
	}

	for _, record := range records {
		ttl := record.RemainingTTL(now)
		if ttl <= 0 {
			continue
		}
		if err := srv.cache.Set(ctx, record.Token, ttl); err != nil {
			return errors.Wrap(err, "failed to rehydrate revoked token")
		}
	}

	srv.logger.Info("Revocation cache rehydrated", slog.Int("tokens", len(records)))

	return nil
}

// Sweep deletes durable rows whose tokens have expired on their own.
func (srv *revocationService) Sweep(ctx context.Context) (int64, error) {
	removed, err := srv.tokenRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to sweep expired revoked tokens")
	}

	if removed > 0 {
		srv.log(ctx).Info("Swept expired revoked tokens", slog.Int64("removed", removed))
	}

	return removed, nil
}

// RunRevocationMaintenance wires the revocation store into the application
// lifecycle: Rehydrate blocks startup, then the sweep loop runs until
// shutdown. Registered as an Fx invocation.
func RunRevocationMaintenance(lc fx.Lifecycle, revoker usecase.TokenRevoker, cfg *config.Config, logger *slog.Logger) {
	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := revoker.Rehydrate(ctx); err != nil {
				return errors.Wrap(err, "failed to rehydrate revocation cache")
			}

			go sweepLoop(loopCtx, done, revoker, cfg.Revocation.SweepInterval, logger)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

func sweepLoop(ctx context.Context, done chan<- struct{}, revoker usecase.TokenRevoker, interval time.Duration, logger *slog.Logger) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Detached context so a shutdown signal does not abort a sweep
			// that already started; OnStop waits for it via done.
			sweepCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
			if _, err := revoker.Sweep(sweepCtx); err != nil {
				logger.Error("Revocation sweep failed", slog.Any("error", err))
			}
			cancel()
		}
	}
}
