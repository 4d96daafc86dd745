package postgres

import (
	"context"
	"testing"

	"matcha/internal/domain/entity"
	domainerrors "matcha/internal/domain/errors"
	"matcha/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs("alice", "alice@example.com", "hashed_password").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	user := &entity.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	}
	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs("alice", "alice@example.com", "hashed_password").
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "users_username_key" (SQLSTATE 23505)`))

	err := repo.Create(context.Background(), &entity.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDuplicateCredentials))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_InfrastructureFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WithArgs("alice", "alice@example.com", "hashed_password").
		WillReturnError(errors.New("connection reset by peer"))

	err := repo.Create(context.Background(), &entity.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	})

	require.Error(t, err)
	assert.False(t, errors.Is(err, repository.ErrDuplicateCredentials))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CheckDuplicateCredentials(t *testing.T) {
	tests := []struct {
		name           string
		usernameExists bool
		emailExists    bool
	}{
		{name: "neither exists", usernameExists: false, emailExists: false},
		{name: "username exists", usernameExists: true, emailExists: false},
		{name: "email exists", usernameExists: false, emailExists: true},
		{name: "both exist", usernameExists: true, emailExists: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewUserRepository(db)

			mock.ExpectQuery(`SELECT(.|\n)*username_exists(.|\n)*email_exists`).
				WithArgs("alice", "alice@example.com").
				WillReturnRows(sqlmock.NewRows([]string{"username_exists", "email_exists"}).
					AddRow(tt.usernameExists, tt.emailExists))

			check, err := repo.CheckDuplicateCredentials(context.Background(), "alice", "alice@example.com")

			require.NoError(t, err)
			assert.Equal(t, tt.usernameExists, check.UsernameExists)
			assert.Equal(t, tt.emailExists, check.EmailExists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_CheckDuplicateCredentials_QueryFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT`).
		WithArgs("alice", "alice@example.com").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.CheckDuplicateCredentials(context.Background(), "alice", "alice@example.com")

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.NoError(t, mock.ExpectationsWereMet())
}
