package employee

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound           = errors.New("employee not found")
	ErrDuplicateEmail     = errors.New("employee email already exists")
	ErrInvalidDesignation = errors.New("invalid designation")
)

type Designation string

const (
	DesignationManager        Designation = "Manager"
	DesignationLoanOfficer    Designation = "Loan Officer"
	DesignationSalesExecutive Designation = "Sales Executive"
	DesignationBankTeller     Designation = "Bank Teller"
)

func (d Designation) Valid() bool {
	switch d {
	case DesignationManager, DesignationLoanOfficer, DesignationSalesExecutive, DesignationBankTeller:
		return true
	}
	return false
}

// ParseDesignation maps an empty value to the Loan Officer default.
func ParseDesignation(s string) (Designation, error) {
	if s == "" {
		return DesignationLoanOfficer, nil
	}
	d := Designation(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDesignation, s)
	}
	return d, nil
}

// Table: employees
type Employee struct {
	ID          uint64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"column:name;size:100;not null" json:"name"`
	Email       string      `gorm:"column:email;size:254;not null;uniqueIndex:ux_employees_email" json:"email"`
	Designation Designation `gorm:"column:designation;size:50;not null;default:'Loan Officer'" json:"designation"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }
