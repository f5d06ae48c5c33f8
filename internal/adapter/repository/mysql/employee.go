package mysql

import (
	"context"

	"loan-crm/internal/domain/application"
	"loan-crm/internal/domain/disbursement"
	"loan-crm/internal/domain/document"
	employeeDomain "loan-crm/internal/domain/employee"

	"gorm.io/gorm"
)

type EmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{db: db} }

func (r *EmployeeRepository) Create(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EmployeeRepository) Save(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uint64) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) First(ctx context.Context) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Order("id ASC").First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employeeDomain.Employee, error) {
	var out []employeeDomain.Employee
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

// Delete cascades by hand so the behaviour does not depend on the
// database enforcing foreign keys (SQLite has them off by default).
func (r *EmployeeRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e employeeDomain.Employee
		if err := tx.Where("id = ?", id).First(&e).Error; err != nil {
			return err
		}
		owned := func() *gorm.DB {
			return tx.Model(&application.LoanApplication{}).Select("id").Where("assigned_to_id = ?", id)
		}

		if err := tx.Where("application_id IN (?) OR banker_id = ?", owned(), id).
			Delete(&disbursement.Disbursement{}).Error; err != nil {
			return err
		}
		if err := tx.Where("application_id IN (?)", owned()).
			Delete(&document.ApplicationDocument{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assigned_to_id = ?", id).
			Delete(&application.LoanApplication{}).Error; err != nil {
			return err
		}
		return tx.Delete(&e).Error
	})
}
