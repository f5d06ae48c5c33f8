package mysql

import (
	"context"
	"errors"
	"testing"

	"loan-crm/internal/domain/application"
	"loan-crm/internal/domain/disbursement"
	"loan-crm/internal/domain/uow"
	"loan-crm/internal/testutil/testdb"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	var appID uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		e := makeEmployee("Banker", "banker@example.com")
		if err := r.Employees.Create(ctx, e); err != nil {
			return err
		}
		a := makeApplication("Ravi", e.ID, 50_000, application.StatusConverted)
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		appID = a.ID
		return r.Disbursements.Create(ctx, &disbursement.Disbursement{ApplicationID: a.ID, BankerID: e.ID, Amount: a.Amount})
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Verify post-commit visibility
	if _, err := NewApplicationRepository(db).GetByID(ctx, appID); err != nil {
		t.Fatalf("application not visible after commit: %v", err)
	}
	if ok, err := NewDisbursementRepository(db).ExistsForApplication(ctx, appID); err != nil || !ok {
		t.Fatalf("disbursement not visible after commit: %v %v", ok, err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	sentinel := errors.New("boom")
	var appID uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		e := makeEmployee("Banker", "banker@example.com")
		if err := r.Employees.Create(ctx, e); err != nil {
			return err
		}
		a := makeApplication("Ravi", e.ID, 50_000, application.StatusConverted)
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		appID = a.ID
		if err := r.Disbursements.Create(ctx, &disbursement.Disbursement{ApplicationID: a.ID, BankerID: e.ID, Amount: a.Amount}); err != nil {
			return err
		}
		return sentinel // force rollback
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}

	// None should exist after rollback
	if _, err := NewEmployeeRepository(db).GetByEmail(ctx, "banker@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected employee not found after rollback, got %v", err)
	}
	if _, err := NewApplicationRepository(db).GetByID(ctx, appID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected application not found after rollback, got %v", err)
	}
	if n, err := NewDisbursementRepository(db).CountByApplicationID(ctx, appID); err != nil || n != 0 {
		t.Fatalf("expected no disbursement after rollback, got %d %v", n, err)
	}
}

func TestGormUoW_WithinApplicationTx_Commit(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	emp := seedEmployee(t, db, "Banker", "banker@example.com")
	seeded := seedApplication(t, db, makeApplication("Ravi", emp.ID, 50_000, application.StatusVerified))

	err := guow.WithinApplicationTx(ctx, seeded.ID, func(r uow.Repos, a *application.LoanApplication) error {
		if a.ID != seeded.ID || a.Status != application.StatusVerified {
			t.Fatalf("locked row mismatch: %+v", a)
		}
		a.Status = application.StatusConverted
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		return r.Disbursements.Create(ctx, &disbursement.Disbursement{ApplicationID: a.ID, BankerID: a.AssignedToID, Amount: a.Amount})
	})
	if err != nil {
		t.Fatalf("WithinApplicationTx: %v", err)
	}

	got, err := NewApplicationRepository(db).GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != application.StatusConverted {
		t.Fatalf("status = %s, want Converted", got.Status)
	}
	if n, _ := NewDisbursementRepository(db).CountByApplicationID(ctx, seeded.ID); n != 1 {
		t.Fatalf("disbursements = %d, want 1", n)
	}
}

func TestGormUoW_WithinApplicationTx_Rollback(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	emp := seedEmployee(t, db, "Banker", "banker@example.com")
	seeded := seedApplication(t, db, makeApplication("Ravi", emp.ID, 50_000, application.StatusVerified))

	sentinel := errors.New("stop")
	err := guow.WithinApplicationTx(ctx, seeded.ID, func(r uow.Repos, a *application.LoanApplication) error {
		a.Status = application.StatusConverted
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}

	got, err := NewApplicationRepository(db).GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != application.StatusVerified {
		t.Fatalf("status = %s, want Verified after rollback", got.Status)
	}
}

func TestGormUoW_WithinApplicationTx_NotFound(t *testing.T) {
	db := testdb.Open(t)
	guow := NewGormUoW(db)

	called := false
	err := guow.WithinApplicationTx(context.Background(), 999, func(uow.Repos, *application.LoanApplication) error {
		called = true
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if called {
		t.Fatalf("fn must not run when the application is missing")
	}
}
