package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *ApplicationDocument) error
	GetByID(ctx context.Context, id uint64) (*ApplicationDocument, error)
	// List returns documents newest first.
	List(ctx context.Context) ([]ApplicationDocument, error)
	ListByApplicationID(ctx context.Context, applicationID uint64) ([]ApplicationDocument, error)
}
