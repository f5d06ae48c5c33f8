package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInput leaves optional fields nil to take the product defaults.
type CreateInput struct {
	Name                string
	InterestRate        *decimal.Decimal
	ProcessingFee       *decimal.Decimal
	MinAmount           *decimal.Decimal
	MaxAmount           *decimal.Decimal
	EligibilityCriteria string
	Description         string
}

type ProductDTO struct {
	ID                  uint64          `json:"id"`
	Name                string          `json:"name"`
	InterestRate        decimal.Decimal `json:"interest_rate"`
	ProcessingFee       decimal.Decimal `json:"processing_fee"`
	MinAmount           decimal.Decimal `json:"min_amount"`
	MaxAmount           decimal.Decimal `json:"max_amount"`
	EligibilityCriteria string          `json:"eligibility_criteria"`
	Description         string          `json:"description"`
	CreatedAt           time.Time       `json:"created_at"`
}
