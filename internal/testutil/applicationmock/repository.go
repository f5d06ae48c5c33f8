package applicationmock

import (
	"context"
	"time"

	domain "loan-crm/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, a *domain.LoanApplication) error
	SaveFn                  func(ctx context.Context, a *domain.LoanApplication) error
	GetByIDFn               func(ctx context.Context, id uint64) (*domain.LoanApplication, error)
	GetByIDForUpdateFn      func(ctx context.Context, id uint64) (*domain.LoanApplication, error)
	ListFn                  func(ctx context.Context, f domain.Filter) ([]domain.LoanApplication, error)
	CountAllFn              func(ctx context.Context) (int64, error)
	CountCreatedBetweenFn   func(ctx context.Context, from, to time.Time) (int64, error)
	CountByDocumentStatusFn func(ctx context.Context, s domain.DocumentStatus) (int64, error)
	CountByStatusFn         func(ctx context.Context) (map[domain.Status]int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.LoanApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanApplication, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.LoanApplication, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.Filter) ([]domain.LoanApplication, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFn != nil {
		return m.CountAllFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.CountCreatedBetweenFn != nil {
		return m.CountCreatedBetweenFn(ctx, from, to)
	}
	return 0, nil
}

func (m *Repo) CountByDocumentStatus(ctx context.Context, s domain.DocumentStatus) (int64, error) {
	if m.CountByDocumentStatusFn != nil {
		return m.CountByDocumentStatusFn(ctx, s)
	}
	return 0, nil
}

func (m *Repo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx)
	}
	return map[domain.Status]int64{}, nil
}
