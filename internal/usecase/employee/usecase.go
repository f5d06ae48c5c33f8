package employee

import (
	"context"
	"errors"
	"strings"

	domain "loan-crm/internal/domain/employee"
	"loan-crm/internal/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrNameRequired = errors.New("employee name is required")

type Usecase struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewUsecase(r domain.Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, log: logger.OrNop(log)}
}

// normalize trims the input. A blank designation resolves to current,
// which is empty on create and so picks up the Loan Officer default.
func normalize(in SaveInput, current domain.Designation) (SaveInput, domain.Designation, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name == "" {
		return in, "", ErrNameRequired
	}
	raw := strings.TrimSpace(in.Designation)
	if raw == "" && current != "" {
		return in, current, nil
	}
	d, err := domain.ParseDesignation(raw)
	return in, d, err
}

func (u *Usecase) Create(ctx context.Context, in SaveInput) (*EmployeeDTO, error) {
	in, d, err := normalize(in, "")
	if err != nil {
		return nil, err
	}
	if _, err := u.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	e := &domain.Employee{Name: in.Name, Email: in.Email, Designation: d}
	if err := u.repo.Create(ctx, e); err != nil {
		// lost a race with a concurrent insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	u.log.Info("employee created", zap.Uint64("employee_id", e.ID), zap.String("designation", string(d)))
	return toDTO(e), nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in SaveInput) (*EmployeeDTO, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	// an omitted designation keeps the stored one
	in, d, err := normalize(in, e.Designation)
	if err != nil {
		return nil, err
	}
	if in.Email != e.Email {
		other, err := u.repo.GetByEmail(ctx, in.Email)
		if err == nil && other.ID != id {
			return nil, domain.ErrDuplicateEmail
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	e.Name, e.Email, e.Designation = in.Name, in.Email, d
	if err := u.repo.Save(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return toDTO(e), nil
}

// Delete cascades to the employee's applications, documents and disbursements.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	u.log.Info("employee deleted", zap.Uint64("employee_id", id))
	return nil
}

func (u *Usecase) List(ctx context.Context) ([]EmployeeDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]EmployeeDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

func toDTO(e *domain.Employee) *EmployeeDTO {
	return &EmployeeDTO{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Designation: string(e.Designation),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
