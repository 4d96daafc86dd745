package postgres

import (
	"context"
	"fmt"

	"matcha/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager is the pool-bound repository handle: it holds the
// shared *gorm.DB and opens a fresh transaction per unit of work.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory is the transaction-bound handle. It holds one
// specific transaction object (*gorm.DB in tx mode) and hands out repository
// instances bound to that single leased connection. It is created at the
// start of one unit of work and discarded at commit or rollback.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// UserRepo creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// Execute on a transaction-bound factory joins the open transaction instead
// of beginning a nested one, so an outer rollback also undoes inner work and
// no second connection is leased.
func (f *gormRepositoryFactory) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(f)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
// Every exit path (normal return, business failure, panic) ends in exactly
// one Commit or Rollback, which returns the leased connection to the pool.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// If the callback panics the transaction must still be rolled back and
	// the connection released before the panic continues upward.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Report the rollback failure but keep the original, more
			// meaningful business error as the wrapped cause.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err // Return the original business error unchanged.
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
