package mysql

import (
	"context"

	docDomain "loan-crm/internal/domain/document"

	"gorm.io/gorm"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *docDomain.ApplicationDocument) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uint64) (*docDomain.ApplicationDocument, error) {
	var out docDomain.ApplicationDocument
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) List(ctx context.Context) ([]docDomain.ApplicationDocument, error) {
	var out []docDomain.ApplicationDocument
	err := r.db.WithContext(ctx).Order("uploaded_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *DocumentRepository) ListByApplicationID(ctx context.Context, applicationID uint64) ([]docDomain.ApplicationDocument, error) {
	var out []docDomain.ApplicationDocument
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("uploaded_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
