package mysql

import (
	"context"
	"time"

	appDomain "loan-crm/internal/domain/application"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*appDomain.LoanApplication, error) {
	var out appDomain.LoanApplication
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

// SQLite ignores the locking clause; MySQL issues SELECT ... FOR UPDATE.
func (r *ApplicationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*appDomain.LoanApplication, error) {
	var out appDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) List(ctx context.Context, f appDomain.Filter) ([]appDomain.LoanApplication, error) {
	q := r.db.WithContext(ctx)
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.DocumentStatus != nil {
		q = q.Where("document_status = ?", *f.DocumentStatus)
	}
	switch f.OrderBy {
	case "updated_at":
		q = q.Order("updated_at DESC, id DESC")
	default:
		q = q.Order("created_at DESC, id DESC")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var out []appDomain.LoanApplication
	err := q.Find(&out).Error
	return out, err
}

func (r *ApplicationRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&appDomain.LoanApplication{}).Count(&n).Error
	return n, err
}

func (r *ApplicationRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&appDomain.LoanApplication{}).
		Where("created_at >= ? AND created_at < ?", from.UTC(), to.UTC()).
		Count(&n).Error
	return n, err
}

func (r *ApplicationRepository) CountByDocumentStatus(ctx context.Context, s appDomain.DocumentStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&appDomain.LoanApplication{}).
		Where("document_status = ?", s).
		Count(&n).Error
	return n, err
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[appDomain.Status]int64, error) {
	var rows []struct {
		Status appDomain.Status
		N      int64
	}
	err := r.db.WithContext(ctx).Model(&appDomain.LoanApplication{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[appDomain.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}
