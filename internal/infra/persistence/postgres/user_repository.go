package postgres

import (
	"context"

	"matcha/internal/domain/entity"
	domainerrors "matcha/internal/domain/errors"
	"matcha/internal/domain/repository"
	"matcha/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
// The handle it wraps is either the shared pool connection or, when built by
// the transaction factory, a single leased transaction connection.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user row and writes the store-assigned id back to
// the entity. A uniqueness rejection surfaces as ErrDuplicateCredentials so
// callers can fold the lost race into the conflict path.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicateCredentials, err.Error())
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// duplicateCheckRow matches the aliased columns of the EXISTS probe.
type duplicateCheckRow struct {
	UsernameExists bool `gorm:"column:username_exists"`
	EmailExists    bool `gorm:"column:email_exists"`
}

// CheckDuplicateCredentials answers both existence questions in one
// round-trip so the transaction holds its connection as briefly as possible.
func (repo *userRepository) CheckDuplicateCredentials(ctx context.Context, username, email string) (repository.DuplicateCheck, error) {
	var row duplicateCheckRow
	err := repo.db.WithContext(ctx).Raw(`
		SELECT
			EXISTS(SELECT 1 FROM users WHERE username = ?) AS username_exists,
			EXISTS(SELECT 1 FROM users WHERE email = ?) AS email_exists
	`, username, email).Scan(&row).Error
	if err != nil {
		return repository.DuplicateCheck{}, domainerrors.NewDatabaseExecuteError(err, "failed to check duplicate credentials")
	}

	return repository.DuplicateCheck{
		UsernameExists: row.UsernameExists,
		EmailExists:    row.EmailExists,
	}, nil
}

// fromUserDomain maps the pure domain entity to a GORM persistence model.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}
}
