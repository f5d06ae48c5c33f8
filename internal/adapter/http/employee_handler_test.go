package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"strings"
	"testing"

	domain "loan-crm/internal/domain/employee"
	"loan-crm/internal/testutil/employeemock"
	empuc "loan-crm/internal/usecase/employee"

	"gorm.io/gorm"
)

func TestCreateEmployee_Success(t *testing.T) {
	e := newEchoWithValidator()
	h := NewEmployeeHandler(empuc.NewUsecase(&employeemock.Repo{
		CreateFn: func(ctx context.Context, emp *domain.Employee) error { emp.ID = 1; return nil },
	}, nil))

	c, rec := jsonCtx(e, stdhttp.MethodPost, "/employees", map[string]any{
		"name": "Asha", "email": "asha@example.com", "designation": "Manager",
	})
	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
	var got empuc.EmployeeDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.ID != 1 || got.Designation != "Manager" {
		t.Fatalf("unexpected dto: %+v", got)
	}
}

func TestCreateEmployee_BindError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewEmployeeHandler(empuc.NewUsecase(&employeemock.Repo{}, nil))

	req := newRawJSONRequest(stdhttp.MethodPost, "/employees", `{"name":`) // broken JSON
	rec := newRecorder()
	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if er := decodeError(t, rec); er.Error != "invalid body" {
		t.Fatalf("error = %q", er.Error)
	}
}

func TestCreateEmployee_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := NewEmployeeHandler(empuc.NewUsecase(&employeemock.Repo{
		CreateFn: func(ctx context.Context, emp *domain.Employee) error {
			t.Fatalf("Create must not be called")
			return nil
		},
	}, nil))

	c, rec := jsonCtx(e, stdhttp.MethodPost, "/employees", map[string]any{
		"name": strings.Repeat("x", 101), "email": "nope",
	})
	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	er := decodeError(t, rec)
	if er.Error != "validation failed" {
		t.Fatalf("error = %q", er.Error)
	}
	if !containsFieldMsg(er.Details, "name", "at most 100") || !containsFieldMsg(er.Details, "email", "valid email") {
		t.Fatalf("missing details: %+v", er.Details)
	}
}

func TestCreateEmployee_BadDesignationIs422(t *testing.T) {
	e := newEchoWithValidator()
	h := NewEmployeeHandler(empuc.NewUsecase(&employeemock.Repo{}, nil))

	c, rec := jsonCtx(e, stdhttp.MethodPost, "/employees", map[string]any{
		"name": "Asha", "email": "asha@example.com", "designation": "CEO",
	})
	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if er := decodeError(t, rec); !containsFieldMsg(er.Details, "designation", "invalid designation") {
		t.Fatalf("details = %+v", er.Details)
	}
}

func TestCreateEmployee_DuplicateEmailIs409(t *testing.T) {
	e := newEchoWithValidator()
	h := NewEmployeeHandler(empuc.NewUsecase(&employeemock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*domain.Employee, error) {
			return &domain.Employee{ID: 2, Email: email}, nil
		},
	}, nil))

	c, rec := jsonCtx(e, stdhttp.MethodPost, "/employees", map[string]any{"name": "Asha", "email": "asha@example.com"})
	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestUpdateEmployee_PathAndNotFound(t *testing.T) {
	e := newEchoWithValidator()
	h := NewEmployeeHandler(empuc.NewUsecase(&employeemock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*domain.Employee, error) { return nil, gorm.ErrRecordNotFound },
	}, nil))

	c, rec := jsonCtx(e, stdhttp.MethodPut, "/employees/abc", map[string]any{"name": "A", "email": "a@example.com"})
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("bad id: status = %d, want 400", rec.Code)
	}

	c, rec = jsonCtx(e, stdhttp.MethodPut, "/employees/9", map[string]any{"name": "A", "email": "a@example.com"})
	c.SetParamNames("id")
	c.SetParamValues("9")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("missing: status = %d, want 404", rec.Code)
	}
}

func TestDeleteEmployee(t *testing.T) {
	e := newEchoWithValidator()
	var deleted uint64
	h := NewEmployeeHandler(empuc.NewUsecase(&employeemock.Repo{
		DeleteFn: func(ctx context.Context, id uint64) error { deleted = id; return nil },
	}, nil))

	c, rec := jsonCtx(e, stdhttp.MethodDelete, "/employees/4", nil)
	c.SetParamNames("id")
	c.SetParamValues("4")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if rec.Code != stdhttp.StatusNoContent || deleted != 4 {
		t.Fatalf("status = %d deleted = %d", rec.Code, deleted)
	}
}

func TestListEmployees_RepoErrorGoesToEcho(t *testing.T) {
	e := newEchoWithValidator()
	h := NewEmployeeHandler(empuc.NewUsecase(&employeemock.Repo{
		ListFn: func(ctx context.Context) ([]domain.Employee, error) { return nil, context.DeadlineExceeded },
	}, nil))

	c, _ := jsonCtx(e, stdhttp.MethodGet, "/employees", nil)
	if err := h.List(c); err == nil {
		t.Fatalf("expected the error to be returned to echo")
	}
}
