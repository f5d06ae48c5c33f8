package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *LoanProduct) error
	GetByID(ctx context.Context, id uint64) (*LoanProduct, error)
	List(ctx context.Context) ([]LoanProduct, error)
	// Delete clears references from applications and disbursements
	// before removing the product; it never deletes applications.
	Delete(ctx context.Context, id uint64) error
}
