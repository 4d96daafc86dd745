// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "matcha/internal/delivery/context"
	"matcha/internal/domain/entity"
	domainerrors "matcha/internal/domain/errors"
	"matcha/internal/domain/repository"
	"matcha/internal/domain/service"
	"matcha/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	publisher service.EventPublisher
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register runs the complete registration unit of work inside exactly one
// transaction: confirmation check, duplicate check, hashing, creation, in
// that order. Any failure aborts the whole transaction; the duplicate check
// happens-before the insert by sequential composition.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The confirmation check is pure; it sits inside the transaction so
		// the whole operation reads as one unit of work. It cannot fail
		// after passing, so placement is not observable.
		if input.Password != input.Repassword {
			return domainerrors.ErrPasswordMismatch
		}

		userRepo := repoFactory.UserRepo()

		check, err := userRepo.CheckDuplicateCredentials(ctx, input.Username, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check duplicate credentials")
		}
		if conflict := duplicateCredentialError(check); conflict != nil {
			return conflict
		}

		// Hash only after the duplicate check passed; a rejected
		// registration never pays for hashing.
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}

		user := &entity.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateCredentials) {
				// A concurrent registration won the race between our
				// duplicate check and the insert. Still a conflict, not an
				// infrastructure failure.
				return domainerrors.ErrDuplicateCredentials
			}

			return errors.Wrap(err, "failed to create user")
		}

		registered = user

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed",
			slog.String("username", input.Username),
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", registered.ID))

	srv.publishRegistered(ctx, registered)

	return &usecase.RegisterOutput{UserID: registered.ID}, nil
}

// duplicateCredentialError maps a duplicate check onto the conflict
// taxonomy. When both credentials collide the combined conflict is
// reported rather than either alone; single collisions name their field.
func duplicateCredentialError(check repository.DuplicateCheck) error {
	switch {
	case check.UsernameExists && check.EmailExists:
		return domainerrors.ErrCredentialsTaken
	case check.UsernameExists:
		return domainerrors.ErrUsernameTaken
	case check.EmailExists:
		return domainerrors.ErrEmailTaken
	}

	return nil
}

// publishRegistered emits the post-commit event. Publishing is best-effort:
// the user row is already committed, so a broker failure must not turn a
// successful registration into an error response.
func (srv *authService) publishRegistered(ctx context.Context, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	event := &service.UserRegisteredEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		UserID:       user.ID,
		Username:     user.Username,
		Email:        user.Email,
		RegisteredAt: time.Now().UTC(),
	}
	if err := srv.publisher.PublishUserRegistered(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish user registered event",
			slog.Int64("userID", user.ID),
			slog.Any("error", err),
		)
	}
}
