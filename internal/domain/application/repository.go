package application

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	Save(ctx context.Context, a *LoanApplication) error
	GetByID(ctx context.Context, id uint64) (*LoanApplication, error)
	// GetByIDForUpdate row-locks the application for the rest of the tx.
	GetByIDForUpdate(ctx context.Context, id uint64) (*LoanApplication, error)
	List(ctx context.Context, f Filter) ([]LoanApplication, error)

	CountAll(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByDocumentStatus(ctx context.Context, s DocumentStatus) (int64, error)
	// CountByStatus returns only statuses with at least one row.
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
