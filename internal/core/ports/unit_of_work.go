package ports

import "context"

// UnitOfWork coordinates a database transaction across the repositories a
// business operation touches. Begin opens the transaction; every repository
// obtained afterwards operates inside it until Commit or Rollback.
//
// Each UnitOfWork instance is single-use and not safe for concurrent use;
// concurrent operations must create their own instances via a factory.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	DeliveryRepository() DeliveryRepository
	ProblemRepository() ProblemRepository
	CourierRepository() CourierRepository
	RecipientRepository() RecipientRepository
}
