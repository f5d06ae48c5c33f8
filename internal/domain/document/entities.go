package document

import (
	"errors"
	"time"

	"loan-crm/internal/domain/application"
)

var ErrNotFound = errors.New("document not found")

// Table: application_documents
type ApplicationDocument struct {
	ID            uint64                     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ApplicationID uint64                     `gorm:"column:application_id;not null;index" json:"application_id"`
	Title         string                     `gorm:"column:title;size:100;not null" json:"title"`
	File          string                     `gorm:"column:file;size:512;not null" json:"file"`
	OriginalName  string                     `gorm:"column:original_name;size:255" json:"original_name"`
	ContentType   string                     `gorm:"column:content_type;size:128" json:"content_type"`
	Size          int64                      `gorm:"column:size" json:"size"`
	Status        application.DocumentStatus `gorm:"column:status;size:20;not null;default:'Submitted'" json:"status"`
	UploadedAt    time.Time                  `gorm:"column:uploaded_at;autoCreateTime;index" json:"uploaded_at"`
}

func (ApplicationDocument) TableName() string { return "application_documents" }
