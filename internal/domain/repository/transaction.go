package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back and
	// the original error is returned unchanged. Otherwise it's committed.
	// The leased connection is released on every exit path, including panics.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one specific
// transaction, so all operations inside the unit of work share a single
// leased connection.
//
// A RepositoryFactory is itself a TransactionManager: calling Execute on it
// joins the transaction it is bound to instead of opening a nested one, so
// an outer rollback also undoes inner work. This lets composed operations
// share one atomic unit without double-acquiring connections.
type RepositoryFactory interface {
	TransactionManager

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository
}
