package disbursement

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("disbursement not found")

// Table: disbursements. The unique index on application_id is what
// guarantees at most one disbursement per application under concurrent writes.
type Disbursement struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ApplicationID uint64          `gorm:"column:application_id;not null;uniqueIndex:ux_disbursements_application" json:"application_id"`
	BankerID      uint64          `gorm:"column:banker_id;not null;index" json:"banker_id"`
	ProductID     *uint64         `gorm:"column:product_id;index" json:"product_id"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(12,2);not null" json:"amount"`
	Date          time.Time       `gorm:"column:date;autoCreateTime" json:"date"`
}

func (Disbursement) TableName() string { return "disbursements" }

// BankerTotal is one row of the employee performance aggregation.
type BankerTotal struct {
	EmployeeID     uint64          `gorm:"column:employee_id" json:"employee_id"`
	Name           string          `gorm:"column:name" json:"name"`
	Email          string          `gorm:"column:email" json:"email"`
	Designation    string          `gorm:"column:designation" json:"designation"`
	TotalDisbursed decimal.Decimal `gorm:"column:total_disbursed" json:"total_disbursed"`
	DealsClosed    int64           `gorm:"column:deals_closed" json:"deals_closed"`
}
