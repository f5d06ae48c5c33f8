package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound              = errors.New("loan application not found")
	ErrAssigneeRequired      = errors.New("application must be assigned to an employee")
	ErrNameRequired          = errors.New("applicant name is required")
	ErrInvalidAmount         = errors.New("amount must not be negative")
	ErrInvalidStatus         = errors.New("invalid application status")
	ErrInvalidDocumentStatus = errors.New("invalid document status")
	ErrInvalidEmploymentType = errors.New("invalid employment type")
)

// Status is the pipeline stage of a lead.
type Status string

const (
	StatusNew       Status = "New"
	StatusContacted Status = "Contacted"
	StatusFollowUp  Status = "Follow-up"
	StatusVerified  Status = "Verified"
	StatusConverted Status = "Converted"
	StatusRejected  Status = "Rejected"
)

// Statuses lists every pipeline stage in display order.
var Statuses = []Status{StatusNew, StatusContacted, StatusFollowUp, StatusVerified, StatusConverted, StatusRejected}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusFollowUp, StatusVerified, StatusConverted, StatusRejected:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	if s == "" {
		return StatusNew, nil
	}
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// DocumentStatus tracks paperwork verification, independent of Status.
type DocumentStatus string

const (
	DocumentPending   DocumentStatus = "Pending"
	DocumentSubmitted DocumentStatus = "Submitted"
	DocumentVerified  DocumentStatus = "Verified"
	DocumentRejected  DocumentStatus = "Rejected"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentPending, DocumentSubmitted, DocumentVerified, DocumentRejected:
		return true
	}
	return false
}

// ParseDocumentStatus returns def for an empty string.
func ParseDocumentStatus(s string, def DocumentStatus) (DocumentStatus, error) {
	if s == "" {
		return def, nil
	}
	ds := DocumentStatus(s)
	if !ds.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDocumentStatus, s)
	}
	return ds, nil
}

type EmploymentType string

const (
	EmploymentSalaried     EmploymentType = "Salaried"
	EmploymentSelfEmployed EmploymentType = "Self-employed"
)

func (e EmploymentType) Valid() bool {
	switch e {
	case EmploymentSalaried, EmploymentSelfEmployed:
		return true
	}
	return false
}

func ParseEmploymentType(s string) (EmploymentType, error) {
	if s == "" {
		return EmploymentSalaried, nil
	}
	et := EmploymentType(s)
	if !et.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmploymentType, s)
	}
	return et, nil
}

// Table: loan_applications
type LoanApplication struct {
	ID             uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name           string          `gorm:"column:name;size:200;not null" json:"name"`
	Phone          *string         `gorm:"column:phone;size:20" json:"phone"`
	Email          *string         `gorm:"column:email;size:254" json:"email"`
	LoanProductID  *uint64         `gorm:"column:loan_product_id;index" json:"loan_product_id"`
	EmploymentType EmploymentType  `gorm:"column:employment_type;size:50;not null;default:'Salaried'" json:"employment_type"`
	AssignedToID   uint64          `gorm:"column:assigned_to_id;not null;index" json:"assigned_to_id"`
	Status         Status          `gorm:"column:status;size:20;not null;default:'New';index" json:"status"`
	DocumentStatus DocumentStatus  `gorm:"column:document_status;size:20;not null;default:'Pending';index" json:"document_status"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	Notes          *string         `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LoanApplication) TableName() string { return "loan_applications" }

// Filter narrows List; a zero value lists everything.
type Filter struct {
	Status         *Status
	DocumentStatus *DocumentStatus
	Limit          int
	// OrderBy is a column name; newest first.
	OrderBy string
}
