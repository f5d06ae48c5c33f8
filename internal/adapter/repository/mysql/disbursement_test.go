package mysql

import (
	"context"
	"errors"
	"testing"

	"loan-crm/internal/domain/application"
	"loan-crm/internal/domain/disbursement"
	"loan-crm/internal/testutil/testdb"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestDisbursement_UniquePerApplication(t *testing.T) {
	db := testdb.Open(t)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	emp := seedEmployee(t, db, "E1", "e1@example.com")
	a := seedApplication(t, db, makeApplication("Ravi", emp.ID, 50_000, application.StatusConverted))

	if err := repo.Create(ctx, &disbursement.Disbursement{ApplicationID: a.ID, BankerID: emp.ID, Amount: a.Amount}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	err := repo.Create(ctx, &disbursement.Disbursement{ApplicationID: a.ID, BankerID: emp.ID, Amount: a.Amount})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("second Create: want ErrDuplicatedKey, got %v", err)
	}

	exists, err := repo.ExistsForApplication(ctx, a.ID)
	if err != nil || !exists {
		t.Fatalf("ExistsForApplication = %v, %v", exists, err)
	}
	got, err := repo.GetByApplicationID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if !got.Amount.Equal(decimal.NewFromInt(50_000)) || got.Date.IsZero() {
		t.Fatalf("unexpected disbursement: %+v", got)
	}
	if _, err := repo.GetByApplicationID(ctx, a.ID+1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDisbursement_TotalsByBanker(t *testing.T) {
	db := testdb.Open(t)
	repo := NewDisbursementRepository(db)
	ctx := context.Background()

	low := seedEmployee(t, db, "Low", "low@example.com")
	idle := seedEmployee(t, db, "Idle", "idle@example.com")
	high := seedEmployee(t, db, "High", "high@example.com")

	book := func(emp uint64, amount string) {
		a := seedApplication(t, db, makeApplication("x", emp, 0, application.StatusConverted))
		if err := repo.Create(ctx, &disbursement.Disbursement{ApplicationID: a.ID, BankerID: emp, Amount: decimal.RequireFromString(amount)}); err != nil {
			t.Fatalf("seed disbursement: %v", err)
		}
	}
	book(low.ID, "1000.50")
	book(high.ID, "70000")
	book(high.ID, "30000.25")

	rows, err := repo.TotalsByBanker(ctx, 0)
	if err != nil {
		t.Fatalf("TotalsByBanker: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 rows (zero-sum employees included), got %d", len(rows))
	}
	if rows[0].EmployeeID != high.ID || !rows[0].TotalDisbursed.Equal(decimal.RequireFromString("100000.25")) || rows[0].DealsClosed != 2 {
		t.Fatalf("unexpected top row: %+v", rows[0])
	}
	if rows[1].EmployeeID != low.ID || rows[1].DealsClosed != 1 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
	if rows[2].EmployeeID != idle.ID || !rows[2].TotalDisbursed.IsZero() || rows[2].DealsClosed != 0 {
		t.Fatalf("unexpected last row: %+v", rows[2])
	}

	top, err := repo.TotalsByBanker(ctx, 1)
	if err != nil {
		t.Fatalf("TotalsByBanker(limit): %v", err)
	}
	if len(top) != 1 || top[0].EmployeeID != high.ID {
		t.Fatalf("limit not applied: %+v", top)
	}
}
