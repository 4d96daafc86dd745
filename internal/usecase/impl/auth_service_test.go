package impl

import (
	"context"
	"testing"

	"matcha/internal/domain/entity"
	domainerrors "matcha/internal/domain/errors"
	"matcha/internal/domain/repository"
	mockRepo "matcha/internal/mocks/repository"
	mockSvc "matcha/internal/mocks/service"
	"matcha/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
	publisher *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewAuthService(AuthServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return authServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
		publisher: publisher,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:   "alice",
		Email:      "alice@example.com",
		Password:   "Password123!",
		Repassword: "Password123!",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				CheckDuplicateCredentials(ctx, input.Username, input.Email).
				Return(repository.DuplicateCheck{}, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, input.Username, user.Username)
					assert.Equal(t, input.Email, user.Email)
					assert.Equal(t, "hashed_password", user.PasswordHash)
					user.ID = 42
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishUserRegistered(ctx, mock.AnythingOfType("*service.UserRegisteredEvent")).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(42), output.UserID)
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := validRegisterInput()
	input.Repassword = "Different123!"

	// The confirmation check rejects before any repository or hasher call:
	// the factory is handed over untouched.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrPasswordMismatch)

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestAuthService_Register_DuplicatePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		check   repository.DuplicateCheck
		wantErr *domainerrors.BaseError
	}{
		{
			name:    "both taken reports combined conflict",
			check:   repository.DuplicateCheck{UsernameExists: true, EmailExists: true},
			wantErr: domainerrors.ErrCredentialsTaken,
		},
		{
			name:    "username taken",
			check:   repository.DuplicateCheck{UsernameExists: true},
			wantErr: domainerrors.ErrUsernameTaken,
		},
		{
			name:    "email taken",
			check:   repository.DuplicateCheck{EmailExists: true},
			wantErr: domainerrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			ctx := context.Background()
			input := validRegisterInput()

			// A rejected registration never reaches the hasher or Create.
			fx.txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
					mockFactory := mockRepo.NewMockRepositoryFactory(t)
					mockUserRepo := mockRepo.NewMockUserRepository(t)

					mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

					mockUserRepo.EXPECT().
						CheckDuplicateCredentials(ctx, input.Username, input.Email).
						Return(tt.check, nil)

					_ = fn(mockFactory)
				}).
				Return(tt.wantErr)

			output, err := fx.service.Register(ctx, input)

			assert.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestAuthService_Register_DuplicateCheckFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := validRegisterInput()
	checkErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to check duplicate credentials")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				CheckDuplicateCredentials(ctx, input.Username, input.Email).
				Return(repository.DuplicateCheck{}, checkErr)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(checkErr, "failed to check duplicate credentials"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := validRegisterInput()
	hashErr := errors.New("hashing unavailable")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				CheckDuplicateCredentials(ctx, input.Username, input.Email).
				Return(repository.DuplicateCheck{}, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("", hashErr)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(hashErr, "failed to hash password"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, hashErr))
}

func TestAuthService_Register_CreateRace(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := validRegisterInput()

	// A concurrent registration slips between the duplicate check and the
	// insert; the store's uniqueness rejection is reported as a conflict.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				CheckDuplicateCredentials(ctx, input.Username, input.Email).
				Return(repository.DuplicateCheck{}, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(errors.Wrap(repository.ErrDuplicateCredentials, "duplicate key value violates unique constraint"))

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrDuplicateCredentials)

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateCredentials))
}

func TestAuthService_Register_CreateFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := validRegisterInput()
	createErr := domainerrors.NewDatabaseExecuteError(errors.New("write timeout"), "failed to create user")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				CheckDuplicateCredentials(ctx, input.Username, input.Email).
				Return(repository.DuplicateCheck{}, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(createErr)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(createErr, "failed to create user"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestAuthService_Register_PublishFailureIsTolerated(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := validRegisterInput()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				CheckDuplicateCredentials(ctx, input.Username, input.Email).
				Return(repository.DuplicateCheck{}, nil)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 7
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// The row is committed by the time publishing runs; a broker outage must
	// not fail the registration.
	fx.publisher.EXPECT().
		PublishUserRegistered(ctx, mock.AnythingOfType("*service.UserRegisteredEvent")).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(7), output.UserID)
}
