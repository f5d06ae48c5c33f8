package employeemock

import (
	"context"

	domain "loan-crm/internal/domain/employee"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, e *domain.Employee) error
	SaveFn       func(ctx context.Context, e *domain.Employee) error
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.Employee, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Employee, error)
	FirstFn      func(ctx context.Context) (*domain.Employee, error)
	ListFn       func(ctx context.Context) ([]domain.Employee, error)
	DeleteFn     func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Employee) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, e *domain.Employee) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Employee, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) First(ctx context.Context) (*domain.Employee, error) {
	if m.FirstFn != nil {
		return m.FirstFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Employee, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
