package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// The usecase layer drives transactions through it without depending on a
// specific DB driver like GORM. Every mutator runs inside exactly one
// Execute call, so the ownership check and the write it guards always see
// the same transactional snapshot.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise it is committed. All repository instances obtained from the
	// factory are bound to the same transaction.
	Execute(ctx context.Context, fn func(txRepos RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	SessionRepo() SessionRepository
	IdeaRepo() IdeaRepository
	ArtifactRepo() ArtifactRepository
	SettingsRepo() SettingsRepository
	AccountRepo() ConnectedAccountRepository
}
