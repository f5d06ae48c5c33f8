package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainApp "loan-crm/internal/domain/application"
	"loan-crm/internal/domain/disbursement"
	"loan-crm/internal/domain/employee"
	"loan-crm/internal/domain/product"
	"loan-crm/internal/domain/uow"
	"loan-crm/internal/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	apps          domainApp.Repository
	disbursements disbursement.Repository
	uow           uow.UnitOfWork
	log           *zap.Logger
}

func NewUsecase(apps domainApp.Repository, disbursements disbursement.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	return &Usecase{apps: apps, disbursements: disbursements, uow: tx, log: logger.OrNop(log)}
}

type parsedInput struct {
	status         domainApp.Status
	documentStatus domainApp.DocumentStatus
	employmentType domainApp.EmploymentType
}

// validate rejects bad input before any transaction is opened.
func validate(in SaveInput) (parsedInput, error) {
	var p parsedInput
	if strings.TrimSpace(in.Name) == "" {
		return p, domainApp.ErrNameRequired
	}
	if in.AssignedToID == 0 {
		return p, domainApp.ErrAssigneeRequired
	}
	if in.Amount.IsNegative() {
		return p, domainApp.ErrInvalidAmount
	}
	var err error
	if p.status, err = domainApp.ParseStatus(in.Status); err != nil {
		return p, err
	}
	if p.documentStatus, err = domainApp.ParseDocumentStatus(in.DocumentStatus, domainApp.DocumentPending); err != nil {
		return p, err
	}
	if p.employmentType, err = domainApp.ParseEmploymentType(in.EmploymentType); err != nil {
		return p, err
	}
	return p, nil
}

// checkRefs makes sure the assignee and (optional) product exist.
func checkRefs(ctx context.Context, r uow.Repos, in SaveInput) error {
	if _, err := r.Employees.GetByID(ctx, in.AssignedToID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("assigned_to %d: %w", in.AssignedToID, employee.ErrNotFound)
		}
		return err
	}
	if in.LoanProductID != nil {
		if _, err := r.Products.GetByID(ctx, *in.LoanProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("loan_product %d: %w", *in.LoanProductID, product.ErrNotFound)
			}
			return err
		}
	}
	return nil
}

func apply(a *domainApp.LoanApplication, in SaveInput, p parsedInput) {
	a.Name = strings.TrimSpace(in.Name)
	a.Phone = in.Phone
	a.Email = in.Email
	a.LoanProductID = in.LoanProductID
	a.EmploymentType = p.employmentType
	a.AssignedToID = in.AssignedToID
	a.Status = p.status
	a.DocumentStatus = p.documentStatus
	a.Amount = in.Amount
	a.Notes = in.Notes
}

func (u *Usecase) Create(ctx context.Context, in SaveInput) (*SaveResult, error) {
	p, err := validate(in)
	if err != nil {
		return nil, err
	}
	var res *SaveResult
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := checkRefs(ctx, r, in); err != nil {
			return err
		}
		a := &domainApp.LoanApplication{}
		apply(a, in, p)
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		res, err = u.afterSave(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in SaveInput) (*SaveResult, error) {
	p, err := validate(in)
	if err != nil {
		return nil, err
	}
	var res *SaveResult
	err = u.uow.WithinApplicationTx(ctx, id, func(r uow.Repos, a *domainApp.LoanApplication) error {
		if err := checkRefs(ctx, r, in); err != nil {
			return err
		}
		apply(a, in, p)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		res, err = u.afterSave(ctx, r, a)
		return err
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainApp.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// afterSave is the post-save hook: the conversion rule plus the DTO.
func (u *Usecase) afterSave(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication) (*SaveResult, error) {
	created, err := recordDisbursement(ctx, r, a)
	if err != nil {
		return nil, err
	}
	d := created
	if d == nil {
		d, err = r.Disbursements.GetByApplicationID(ctx, a.ID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			d = nil
		}
	}
	if created != nil {
		u.log.Info("disbursement recorded",
			zap.Uint64("application_id", a.ID),
			zap.Uint64("disbursement_id", created.ID),
			zap.Uint64("banker_id", created.BankerID),
			zap.String("amount", created.Amount.StringFixed(2)),
		)
	}
	return &SaveResult{Application: toDTO(a, d), DisbursementCreated: created != nil}, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ApplicationDTO, error) {
	a, err := u.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainApp.ErrNotFound
		}
		return nil, err
	}
	d, err := u.disbursements.GetByApplicationID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		d = nil
	}
	dto := toDTO(a, d)
	return &dto, nil
}

// List returns applications newest first; status "" means all.
func (u *Usecase) List(ctx context.Context, status string) ([]ApplicationDTO, error) {
	var f domainApp.Filter
	if status != "" {
		st := domainApp.Status(status)
		if !st.Valid() {
			return nil, fmt.Errorf("%w: %q", domainApp.ErrInvalidStatus, status)
		}
		f.Status = &st
	}
	rows, err := u.apps.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, toDTO(&rows[i], nil))
	}
	return out, nil
}
