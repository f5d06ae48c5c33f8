package uow

import (
	"context"

	"loan-crm/internal/domain/admin"
	"loan-crm/internal/domain/application"
	"loan-crm/internal/domain/disbursement"
	"loan-crm/internal/domain/document"
	"loan-crm/internal/domain/employee"
	"loan-crm/internal/domain/product"
)

// Repos are bound to the same transaction.
type Repos struct {
	Employees     employee.Repository
	Products      product.Repository
	Applications  application.Repository
	Documents     document.Repository
	Disbursements disbursement.Repository
	Admins        admin.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID uint64, fn func(r Repos, a *application.LoanApplication) error) error
}
