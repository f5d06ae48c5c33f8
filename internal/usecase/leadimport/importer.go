package leadimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"loan-crm/internal/domain/employee"
	"loan-crm/internal/logger"
	appuc "loan-crm/internal/usecase/application"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidCSV = errors.New("invalid csv: header row could not be read")
	ErrNoAssignee = errors.New("no employee available to assign the lead")
	ErrBadAmount  = errors.New("amount is not a number with at most 2 decimal places")
)

// FallbackPolicy decides who gets a lead whose assigned_to_email does not
// match an employee.
type FallbackPolicy string

const (
	// FallbackFirst assigns the employee with the lowest id.
	FallbackFirst FallbackPolicy = "first"
	// FallbackSkip fails the row.
	FallbackSkip FallbackPolicy = "skip"
)

func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch p := FallbackPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return FallbackFirst, nil
	case FallbackFirst, FallbackSkip:
		return p, nil
	default:
		return "", fmt.Errorf("unknown fallback policy %q", s)
	}
}

const defaultName = "Untitled Application"

// Creator saves one application; the application usecase satisfies it.
type Creator interface {
	Create(ctx context.Context, in appuc.SaveInput) (*appuc.SaveResult, error)
}

type Result struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

type Importer struct {
	employees employee.Repository
	apps      Creator
	policy    FallbackPolicy
	log       *zap.Logger
}

func NewImporter(employees employee.Repository, apps Creator, policy FallbackPolicy, log *zap.Logger) *Importer {
	if policy == "" {
		policy = FallbackFirst
	}
	return &Importer{employees: employees, apps: apps, policy: policy, log: logger.OrNop(log)}
}

type columns map[string]int

func (c columns) get(rec []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// Import reads leads from r. Each row is committed on its own, so a bad
// row is logged and skipped without undoing the rows before it.
func (im *Importer) Import(ctx context.Context, r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}
	cols := columns{}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}

	res := &Result{}
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				im.log.Warn("skipping malformed csv row", zap.Int("line", line), zap.Error(err))
				res.Skipped++
				continue
			}
			return res, err
		}

		if err := im.importRow(ctx, cols, rec); err != nil {
			im.log.Warn("skipping csv row", zap.Int("line", line), zap.Error(err))
			res.Skipped++
			continue
		}
		res.Created++
	}
	im.log.Info("lead import finished", zap.Int("created", res.Created), zap.Int("skipped", res.Skipped))
	return res, nil
}

func (im *Importer) importRow(ctx context.Context, cols columns, rec []string) error {
	amount := decimal.Zero
	if raw := cols.get(rec, "amount"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil || !d.Equal(d.Truncate(2)) {
			return fmt.Errorf("%w: %q", ErrBadAmount, raw)
		}
		amount = d
	}

	assignee, err := im.resolveAssignee(ctx, cols.get(rec, "assigned_to_email"))
	if err != nil {
		return err
	}

	name := cols.get(rec, "name")
	if name == "" {
		name = defaultName
	}
	_, err = im.apps.Create(ctx, appuc.SaveInput{
		Name:         name,
		Email:        optional(cols.get(rec, "email")),
		Phone:        optional(cols.get(rec, "phone")),
		AssignedToID: assignee,
		Status:       "New",
		Amount:       amount,
	})
	return err
}

func (im *Importer) resolveAssignee(ctx context.Context, email string) (uint64, error) {
	if email != "" {
		e, err := im.employees.GetByEmail(ctx, strings.ToLower(email))
		if err == nil {
			return e.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
	}

	switch im.policy {
	case FallbackFirst:
		e, err := im.employees.First(ctx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNoAssignee
		}
		if err != nil {
			return 0, err
		}
		return e.ID, nil
	case FallbackSkip:
		return 0, fmt.Errorf("%w: %q", employee.ErrNotFound, email)
	default:
		return 0, fmt.Errorf("unknown fallback policy %q", im.policy)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
