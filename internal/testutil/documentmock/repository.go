package documentmock

import (
	"context"

	domain "loan-crm/internal/domain/document"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, d *domain.ApplicationDocument) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.ApplicationDocument, error)
	ListFn                func(ctx context.Context) ([]domain.ApplicationDocument, error)
	ListByApplicationIDFn func(ctx context.Context, applicationID uint64) ([]domain.ApplicationDocument, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.ApplicationDocument) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.ApplicationDocument, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.ApplicationDocument, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByApplicationID(ctx context.Context, applicationID uint64) ([]domain.ApplicationDocument, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, applicationID)
	}
	return nil, nil
}
