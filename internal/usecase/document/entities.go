package document

import (
	"io"
	"time"
)

type UploadInput struct {
	ApplicationID uint64
	Title         string
	Status        string
	FileName      string
	ContentType   string
	Body          io.Reader
}

type DocumentDTO struct {
	ID            uint64    `json:"id"`
	ApplicationID uint64    `json:"application_id"`
	Title         string    `json:"title"`
	File          string    `json:"file"`
	OriginalName  string    `json:"original_name"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	Status        string    `json:"status"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// PendingApplication is an application still waiting on paperwork.
type PendingApplication struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	AssignedToID uint64 `json:"assigned_to_id"`
	Status       string `json:"status"`
}

type ListResult struct {
	Documents           []DocumentDTO        `json:"documents"`
	PendingApplications []PendingApplication `json:"pending_applications"`
}
