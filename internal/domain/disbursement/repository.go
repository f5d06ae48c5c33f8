package disbursement

import "context"

type Repository interface {
	// Create fails with gorm.ErrDuplicatedKey when the application already has one.
	Create(ctx context.Context, d *Disbursement) error
	GetByApplicationID(ctx context.Context, applicationID uint64) (*Disbursement, error)
	ExistsForApplication(ctx context.Context, applicationID uint64) (bool, error)
	CountByApplicationID(ctx context.Context, applicationID uint64) (int64, error)
	// TotalsByBanker aggregates every employee, including those with no
	// disbursements, ordered by total desc then employee id. limit <= 0 means all.
	TotalsByBanker(ctx context.Context, limit int) ([]BankerTotal, error)
}
