package mysql

import (
	"context"

	"loan-crm/internal/domain/application"
	"loan-crm/internal/domain/disbursement"
	productDomain "loan-crm/internal/domain/product"

	"gorm.io/gorm"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) Create(ctx context.Context, p *productDomain.LoanProduct) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*productDomain.LoanProduct, error) {
	var out productDomain.LoanProduct
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ProductRepository) List(ctx context.Context) ([]productDomain.LoanProduct, error) {
	var out []productDomain.LoanProduct
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

// Delete nulls references (ON DELETE SET NULL) and then drops the product.
func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p productDomain.LoanProduct
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			return err
		}
		if err := tx.Model(&application.LoanApplication{}).
			Where("loan_product_id = ?", id).
			UpdateColumn("loan_product_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&disbursement.Disbursement{}).
			Where("product_id = ?", id).
			UpdateColumn("product_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&p).Error
	})
}
