package mysql

import (
	"context"
	"testing"

	"loan-crm/internal/domain/application"
	"loan-crm/internal/domain/employee"
	"loan-crm/internal/domain/product"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func makeEmployee(name, email string) *employee.Employee {
	return &employee.Employee{Name: name, Email: email, Designation: employee.DesignationLoanOfficer}
}

func seedEmployee(t *testing.T, db *gorm.DB, name, email string) *employee.Employee {
	t.Helper()
	e := makeEmployee(name, email)
	if err := NewEmployeeRepository(db).Create(context.Background(), e); err != nil {
		t.Fatalf("seed employee: %v", err)
	}
	return e
}

func seedProduct(t *testing.T, db *gorm.DB, name string) *product.LoanProduct {
	t.Helper()
	p := &product.LoanProduct{
		Name:          name,
		InterestRate:  decimal.RequireFromString("11.50"),
		ProcessingFee: decimal.RequireFromString("1.25"),
		MinAmount:     product.DefaultMinAmount,
		MaxAmount:     product.DefaultMaxAmount,
	}
	if err := NewProductRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func makeApplication(name string, assignee uint64, amount int64, st application.Status) *application.LoanApplication {
	return &application.LoanApplication{
		Name:           name,
		AssignedToID:   assignee,
		Status:         st,
		DocumentStatus: application.DocumentPending,
		EmploymentType: application.EmploymentSalaried,
		Amount:         decimal.NewFromInt(amount),
	}
}

func seedApplication(t *testing.T, db *gorm.DB, a *application.LoanApplication) *application.LoanApplication {
	t.Helper()
	if err := NewApplicationRepository(db).Create(context.Background(), a); err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return a
}
