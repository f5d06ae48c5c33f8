package product

import (
	"context"
	"errors"
	"strings"

	domain "loan-crm/internal/domain/product"
	"loan-crm/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNameRequired = errors.New("product name is required")
	ErrNegative     = errors.New("rates and amounts must not be negative")
)

type Usecase struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewUsecase(r domain.Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, log: logger.OrNop(log)}
}

func orDefault(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ProductDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	p := &domain.LoanProduct{
		Name:                name,
		InterestRate:        orDefault(in.InterestRate, domain.DefaultInterestRate),
		ProcessingFee:       orDefault(in.ProcessingFee, domain.DefaultProcessingFee),
		MinAmount:           orDefault(in.MinAmount, domain.DefaultMinAmount),
		MaxAmount:           orDefault(in.MaxAmount, domain.DefaultMaxAmount),
		EligibilityCriteria: in.EligibilityCriteria,
		Description:         in.Description,
	}
	for _, v := range []decimal.Decimal{p.InterestRate, p.ProcessingFee, p.MinAmount, p.MaxAmount} {
		if v.IsNegative() {
			return nil, ErrNegative
		}
	}
	if p.MinAmount.GreaterThan(p.MaxAmount) {
		return nil, domain.ErrInvalidBounds
	}

	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	u.log.Info("loan product created", zap.Uint64("product_id", p.ID), zap.String("name", p.Name))
	return toDTO(p), nil
}

func (u *Usecase) List(ctx context.Context) ([]ProductDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// Delete keeps applications; their product reference becomes empty.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	u.log.Info("loan product deleted", zap.Uint64("product_id", id))
	return nil
}

func toDTO(p *domain.LoanProduct) *ProductDTO {
	return &ProductDTO{
		ID:                  p.ID,
		Name:                p.Name,
		InterestRate:        p.InterestRate,
		ProcessingFee:       p.ProcessingFee,
		MinAmount:           p.MinAmount,
		MaxAmount:           p.MaxAmount,
		EligibilityCriteria: p.EligibilityCriteria,
		Description:         p.Description,
		CreatedAt:           p.CreatedAt,
	}
}
