package mysql

import (
	"context"

	disbDomain "loan-crm/internal/domain/disbursement"

	"gorm.io/gorm"
)

type DisbursementRepository struct{ db *gorm.DB }

func NewDisbursementRepository(db *gorm.DB) *DisbursementRepository {
	return &DisbursementRepository{db: db}
}

func (r *DisbursementRepository) Create(ctx context.Context, d *disbDomain.Disbursement) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DisbursementRepository) GetByApplicationID(ctx context.Context, applicationID uint64) (*disbDomain.Disbursement, error) {
	var out disbDomain.Disbursement
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *DisbursementRepository) ExistsForApplication(ctx context.Context, applicationID uint64) (bool, error) {
	n, err := r.CountByApplicationID(ctx, applicationID)
	return n > 0, err
}

func (r *DisbursementRepository) CountByApplicationID(ctx context.Context, applicationID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&disbDomain.Disbursement{}).
		Where("application_id = ?", applicationID).
		Count(&n).Error
	return n, err
}

func (r *DisbursementRepository) TotalsByBanker(ctx context.Context, limit int) ([]disbDomain.BankerTotal, error) {
	q := r.db.WithContext(ctx).
		Table("employees").
		Select("employees.id AS employee_id, employees.name AS name, employees.email AS email, " +
			"employees.designation AS designation, " +
			"COALESCE(SUM(disbursements.amount), 0) AS total_disbursed, " +
			"COUNT(disbursements.id) AS deals_closed").
		Joins("LEFT JOIN disbursements ON disbursements.banker_id = employees.id").
		Group("employees.id, employees.name, employees.email, employees.designation").
		Order("total_disbursed DESC, employees.id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []disbDomain.BankerTotal
	err := q.Scan(&out).Error
	return out, err
}
