package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"

	"loan-crm/internal/domain/application"
	domain "loan-crm/internal/domain/document"
	"loan-crm/internal/infrastructure/storage"
	"loan-crm/internal/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired = errors.New("document title is required")
	ErrTitleTooLong  = errors.New("document title must be at most 100 characters")
	ErrFileRequired  = errors.New("document file is required")
)

const maxTitleLen = 100

type Usecase struct {
	apps  application.Repository
	docs  domain.Repository
	store storage.Store
	log   *zap.Logger
}

func NewUsecase(apps application.Repository, docs domain.Repository, store storage.Store, log *zap.Logger) *Usecase {
	return &Usecase{apps: apps, docs: docs, store: store, log: logger.OrNop(log)}
}

// Upload stores the file and records it against the application.
// The stored file is removed again if the row cannot be written.
func (u *Usecase) Upload(ctx context.Context, in UploadInput) (*DocumentDTO, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return nil, ErrTitleTooLong
	}
	if in.Body == nil {
		return nil, ErrFileRequired
	}
	st, err := application.ParseDocumentStatus(in.Status, application.DocumentSubmitted)
	if err != nil {
		return nil, err
	}
	if _, err := u.apps.GetByID(ctx, in.ApplicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("application %d: %w", in.ApplicationID, application.ErrNotFound)
		}
		return nil, err
	}

	key, size, err := u.store.Save(ctx, storage.DocumentsPrefix, in.FileName, in.Body)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyFile) {
			return nil, ErrFileRequired
		}
		return nil, fmt.Errorf("store document: %w", err)
	}

	d := &domain.ApplicationDocument{
		ApplicationID: in.ApplicationID,
		Title:         title,
		File:          key,
		OriginalName:  in.FileName,
		ContentType:   in.ContentType,
		Size:          size,
		Status:        st,
	}
	if err := u.docs.Create(ctx, d); err != nil {
		if rerr := u.store.Remove(ctx, key); rerr != nil {
			u.log.Warn("orphaned document file", zap.String("key", key), zap.Error(rerr))
		}
		return nil, err
	}
	u.log.Info("document uploaded",
		zap.Uint64("document_id", d.ID),
		zap.Uint64("application_id", d.ApplicationID),
		zap.Int64("size", size),
	)
	return toDTO(d), nil
}

// Open returns the document and a reader over its stored file. The caller
// closes the reader. A row whose file is gone reports domain.ErrNotFound.
func (u *Usecase) Open(ctx context.Context, id uint64) (*DocumentDTO, io.ReadCloser, error) {
	d, err := u.docs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrNotFound
		}
		return nil, nil, err
	}
	rc, err := u.store.Open(ctx, d.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			u.log.Warn("document file missing", zap.Uint64("document_id", id), zap.String("key", d.File))
			return nil, nil, fmt.Errorf("document %d file: %w", id, domain.ErrNotFound)
		}
		return nil, nil, err
	}
	return toDTO(d), rc, nil
}

// List returns every document newest first, plus applications whose
// paperwork is still Pending.
func (u *Usecase) List(ctx context.Context) (*ListResult, error) {
	docs, err := u.docs.List(ctx)
	if err != nil {
		return nil, err
	}
	pending := application.DocumentPending
	apps, err := u.apps.List(ctx, application.Filter{DocumentStatus: &pending})
	if err != nil {
		return nil, err
	}

	res := &ListResult{
		Documents:           make([]DocumentDTO, 0, len(docs)),
		PendingApplications: make([]PendingApplication, 0, len(apps)),
	}
	for i := range docs {
		res.Documents = append(res.Documents, *toDTO(&docs[i]))
	}
	for _, a := range apps {
		res.PendingApplications = append(res.PendingApplications, PendingApplication{
			ID: a.ID, Name: a.Name, AssignedToID: a.AssignedToID, Status: string(a.Status),
		})
	}
	return res, nil
}

func toDTO(d *domain.ApplicationDocument) *DocumentDTO {
	return &DocumentDTO{
		ID:            d.ID,
		ApplicationID: d.ApplicationID,
		Title:         d.Title,
		File:          d.File,
		OriginalName:  d.OriginalName,
		ContentType:   d.ContentType,
		Size:          d.Size,
		Status:        string(d.Status),
		UploadedAt:    d.UploadedAt,
	}
}
