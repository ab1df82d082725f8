// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and, for transitions the courier must hear about, a notification
// job enqueued only after the transaction committed.
package commands

import (
	"context"

	"parcel/internal/core/ports"
	"parcel/internal/notifications"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories its operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// ProblemRepoFactory provides access to the problem repository within a transaction.
	ProblemRepoFactory interface {
		ProblemRepository() ports.ProblemRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// RecipientRepoFactory provides access to the recipient repository within a transaction.
	RecipientRepoFactory interface {
		RecipientRepository() ports.RecipientRepository
	}

	// DeliveryUoW manages transactions for delivery-only operations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// PickupUoW manages transactions for the pickup operation, which needs the
	// courier row as the serialization point for the daily quota.
	PickupUoW interface {
		TxManager
		DeliveryRepoFactory
		CourierRepoFactory
	}

	// PickupUoWFactory creates new pickup unit of work instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}

	// ProblemUoW manages transactions for problem reporting.
	ProblemUoW interface {
		TxManager
		DeliveryRepoFactory
		ProblemRepoFactory
	}

	// ProblemUoWFactory creates new problem unit of work instances.
	ProblemUoWFactory interface {
		Create() ProblemUoW
	}

	// UoW manages transactions across every aggregate the cancellation and
	// registration paths touch.
	UoW interface {
		TxManager
		DeliveryRepoFactory
		ProblemRepoFactory
		CourierRepoFactory
		RecipientRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// NotificationEnqueuer hands a job to the asynchronous notification pipeline.
// Enqueue returns immediately; the handler never waits on delivery.
type NotificationEnqueuer interface {
	Enqueue(job notifications.Job)
}
