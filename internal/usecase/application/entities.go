package application

import (
	"time"

	domainApp "loan-crm/internal/domain/application"
	"loan-crm/internal/domain/disbursement"

	"github.com/shopspring/decimal"
)

// SaveInput carries raw enum strings; they are parsed before any write.
type SaveInput struct {
	Name           string
	Phone          *string
	Email          *string
	LoanProductID  *uint64
	EmploymentType string
	AssignedToID   uint64
	Status         string
	DocumentStatus string
	Amount         decimal.Decimal
	Notes          *string
}

type DisbursementDTO struct {
	ID        uint64          `json:"id"`
	BankerID  uint64          `json:"banker_id"`
	ProductID *uint64         `json:"product_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
}

type ApplicationDTO struct {
	ID             uint64           `json:"id"`
	Name           string           `json:"name"`
	Phone          *string          `json:"phone"`
	Email          *string          `json:"email"`
	LoanProductID  *uint64          `json:"loan_product_id"`
	EmploymentType string           `json:"employment_type"`
	AssignedToID   uint64           `json:"assigned_to_id"`
	Status         string           `json:"status"`
	DocumentStatus string           `json:"document_status"`
	Amount         decimal.Decimal  `json:"amount"`
	Notes          *string          `json:"notes"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	Disbursement   *DisbursementDTO `json:"disbursement,omitempty"`
}

// SaveResult reports whether this save booked the disbursement.
type SaveResult struct {
	Application         ApplicationDTO `json:"application"`
	DisbursementCreated bool           `json:"disbursement_created"`
}

func toDTO(a *domainApp.LoanApplication, d *disbursement.Disbursement) ApplicationDTO {
	out := ApplicationDTO{
		ID:             a.ID,
		Name:           a.Name,
		Phone:          a.Phone,
		Email:          a.Email,
		LoanProductID:  a.LoanProductID,
		EmploymentType: string(a.EmploymentType),
		AssignedToID:   a.AssignedToID,
		Status:         string(a.Status),
		DocumentStatus: string(a.DocumentStatus),
		Amount:         a.Amount,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if d != nil {
		out.Disbursement = &DisbursementDTO{
			ID:        d.ID,
			BankerID:  d.BankerID,
			ProductID: d.ProductID,
			Amount:    d.Amount,
			Date:      d.Date,
		}
	}
	return out
}
