package application

import (
	"context"
	"errors"
	"fmt"

	domainApp "loan-crm/internal/domain/application"
	"loan-crm/internal/domain/disbursement"
	"loan-crm/internal/domain/uow"

	"gorm.io/gorm"
)

// recordDisbursement runs after every create/update of an application,
// inside the same transaction. It books exactly one disbursement once the
// application is Converted. An existing disbursement is never touched, so
// later edits to amount or assignee do not propagate.
func recordDisbursement(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication) (*disbursement.Disbursement, error) {
	switch a.Status {
	case domainApp.StatusConverted:
	case domainApp.StatusNew, domainApp.StatusContacted, domainApp.StatusFollowUp,
		domainApp.StatusVerified, domainApp.StatusRejected:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", domainApp.ErrInvalidStatus, a.Status)
	}
	if a.AssignedToID == 0 {
		return nil, domainApp.ErrAssigneeRequired
	}

	exists, err := r.Disbursements.ExistsForApplication(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	d := &disbursement.Disbursement{
		ApplicationID: a.ID,
		BankerID:      a.AssignedToID,
		ProductID:     copyID(a.LoanProductID),
		Amount:        a.Amount,
	}
	if err := r.Disbursements.Create(ctx, d); err != nil {
		// a concurrent save won the unique index; that one is the disbursement
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil
		}
		return nil, err
	}
	return d, nil
}

func copyID(p *uint64) *uint64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
