package product

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("loan product not found")
	ErrInvalidBounds = errors.New("min_amount must not exceed max_amount")
)

var (
	DefaultInterestRate  = decimal.NewFromInt(10)
	DefaultProcessingFee = decimal.NewFromInt(1)
	DefaultMinAmount     = decimal.NewFromInt(10_000)
	DefaultMaxAmount     = decimal.NewFromInt(1_000_000)
)

// Table: loan_products. Rates are percentages.
type LoanProduct struct {
	ID                  uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name                string          `gorm:"column:name;size:200;not null" json:"name"`
	InterestRate        decimal.Decimal `gorm:"column:interest_rate;type:decimal(5,2);not null" json:"interest_rate"`
	ProcessingFee       decimal.Decimal `gorm:"column:processing_fee;type:decimal(5,2);not null" json:"processing_fee"`
	MinAmount           decimal.Decimal `gorm:"column:min_amount;type:decimal(12,2);not null" json:"min_amount"`
	MaxAmount           decimal.Decimal `gorm:"column:max_amount;type:decimal(12,2);not null" json:"max_amount"`
	EligibilityCriteria string          `gorm:"column:eligibility_criteria;type:text" json:"eligibility_criteria"`
	Description         string          `gorm:"column:description;type:text" json:"description"`
	CreatedAt           time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LoanProduct) TableName() string { return "loan_products" }
