package employee

import "context"

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	Save(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id uint64) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	// First returns the employee with the lowest id.
	First(ctx context.Context) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// Delete removes the employee and everything that hangs off it
	// (applications, their documents and disbursements).
	Delete(ctx context.Context, id uint64) error
}
