package mysql

import (
	"context"

	adminDomain "loan-crm/internal/domain/admin"

	"gorm.io/gorm"
)

type AdminRepository struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) *AdminRepository { return &AdminRepository{db: db} }

func (r *AdminRepository) Create(ctx context.Context, u *adminDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*adminDomain.User, error) {
	var out adminDomain.User
	res := r.db.WithContext(ctx).Where("username = ?", username).First(&out)
	return &out, res.Error
}
