package disbursementmock

import (
	"context"

	domain "loan-crm/internal/domain/disbursement"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups behave like an empty table.
type Repo struct {
	CreateFn               func(ctx context.Context, d *domain.Disbursement) error
	GetByApplicationIDFn   func(ctx context.Context, applicationID uint64) (*domain.Disbursement, error)
	ExistsForApplicationFn func(ctx context.Context, applicationID uint64) (bool, error)
	CountByApplicationIDFn func(ctx context.Context, applicationID uint64) (int64, error)
	TotalsByBankerFn       func(ctx context.Context, limit int) ([]domain.BankerTotal, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Disbursement) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID uint64) (*domain.Disbursement, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ExistsForApplication(ctx context.Context, applicationID uint64) (bool, error) {
	if m.ExistsForApplicationFn != nil {
		return m.ExistsForApplicationFn(ctx, applicationID)
	}
	return false, nil
}

func (m *Repo) CountByApplicationID(ctx context.Context, applicationID uint64) (int64, error) {
	if m.CountByApplicationIDFn != nil {
		return m.CountByApplicationIDFn(ctx, applicationID)
	}
	return 0, nil
}

func (m *Repo) TotalsByBanker(ctx context.Context, limit int) ([]domain.BankerTotal, error) {
	if m.TotalsByBankerFn != nil {
		return m.TotalsByBankerFn(ctx, limit)
	}
	return nil, nil
}
