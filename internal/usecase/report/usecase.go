package report

import (
	"context"
	"time"

	"loan-crm/internal/domain/application"
	"loan-crm/internal/domain/disbursement"
)

const (
	followUpLimit     = 5
	recentLimit       = 10
	topEmployeesLimit = 5
)

type Usecase struct {
	apps          application.Repository
	disbursements disbursement.Repository
	now           func() time.Time
}

func NewUsecase(apps application.Repository, disbursements disbursement.Repository) *Usecase {
	return &Usecase{apps: apps, disbursements: disbursements, now: time.Now}
}

// WithClock replaces the clock used for "today"; for tests.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

func (u *Usecase) Dashboard(ctx context.Context) (*Dashboard, error) {
	out := &Dashboard{}
	var err error

	if out.TotalApplications, err = u.apps.CountAll(ctx); err != nil {
		return nil, err
	}
	today := u.now().UTC().Truncate(24 * time.Hour)
	if out.NewToday, err = u.apps.CountCreatedBetween(ctx, today, today.Add(24*time.Hour)); err != nil {
		return nil, err
	}
	if out.PendingDocuments, err = u.apps.CountByDocumentStatus(ctx, application.DocumentPending); err != nil {
		return nil, err
	}

	byStatus, err := u.apps.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	out.Converted = byStatus[application.StatusConverted]
	out.Pipeline = make([]PipelineStage, 0, len(application.Statuses))
	for _, st := range application.Statuses {
		out.Pipeline = append(out.Pipeline, PipelineStage{Status: string(st), Count: byStatus[st]})
	}

	followUp := application.StatusFollowUp
	rows, err := u.apps.List(ctx, application.Filter{Status: &followUp, OrderBy: "updated_at", Limit: followUpLimit})
	if err != nil {
		return nil, err
	}
	out.FollowUps = toRows(rows)

	if rows, err = u.apps.List(ctx, application.Filter{Limit: recentLimit}); err != nil {
		return nil, err
	}
	out.RecentApplications = toRows(rows)

	if out.TopEmployees, err = u.bankerRows(ctx, topEmployeesLimit); err != nil {
		return nil, err
	}
	return out, nil
}

// EmployeeReport lists every employee with total disbursed and deals closed,
// highest total first. Employees without disbursements report zero.
func (u *Usecase) EmployeeReport(ctx context.Context) ([]EmployeeRow, error) {
	return u.bankerRows(ctx, 0)
}

func (u *Usecase) bankerRows(ctx context.Context, limit int) ([]EmployeeRow, error) {
	totals, err := u.disbursements.TotalsByBanker(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]EmployeeRow, 0, len(totals))
	for _, t := range totals {
		out = append(out, EmployeeRow{
			EmployeeID:     t.EmployeeID,
			Name:           t.Name,
			Email:          t.Email,
			Designation:    t.Designation,
			TotalDisbursed: t.TotalDisbursed,
			DealsClosed:    t.DealsClosed,
		})
	}
	return out, nil
}

func toRows(apps []application.LoanApplication) []ApplicationRow {
	out := make([]ApplicationRow, 0, len(apps))
	for _, a := range apps {
		out = append(out, ApplicationRow{
			ID:             a.ID,
			Name:           a.Name,
			AssignedToID:   a.AssignedToID,
			Status:         string(a.Status),
			DocumentStatus: string(a.DocumentStatus),
			Amount:         a.Amount,
		})
	}
	return out
}
