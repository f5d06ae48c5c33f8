package http

import (
	"net/http"

	"loan-crm/internal/domain/application"
	appuc "loan-crm/internal/usecase/application"
	"loan-crm/internal/usecase/leadimport"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ApplicationHandler struct {
	uc       *appuc.Usecase
	importer *leadimport.Importer
}

func NewApplicationHandler(uc *appuc.Usecase, importer *leadimport.Importer) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, importer: importer}
}

type saveApplicationReq struct {
	Name           string           `json:"name"            validate:"required,max=200"`
	Phone          *string          `json:"phone"           validate:"omitempty,max=20"`
	Email          *string          `json:"email"           validate:"omitempty,email,max=254"`
	LoanProductID  *uint64          `json:"loan_product_id" validate:"omitempty,gt=0"`
	EmploymentType string           `json:"employment_type"`
	AssignedToID   uint64           `json:"assigned_to_id"  validate:"required"`
	Status         string           `json:"status"`
	DocumentStatus string           `json:"document_status"`
	Amount         *decimal.Decimal `json:"amount"          validate:"required,nonneg,dec2"`
	Notes          *string          `json:"notes"`
}

func (r saveApplicationReq) input() appuc.SaveInput {
	return appuc.SaveInput{
		Name:           r.Name,
		Phone:          blankToNil(r.Phone),
		Email:          blankToNil(r.Email),
		LoanProductID:  r.LoanProductID,
		EmploymentType: r.EmploymentType,
		AssignedToID:   r.AssignedToID,
		Status:         r.Status,
		DocumentStatus: r.DocumentStatus,
		Amount:         *r.Amount,
		Notes:          blankToNil(r.Notes),
	}
}

func blankToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func (h *ApplicationHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err, application.ErrNotFound)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req saveApplicationReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	res, err := h.uc.Create(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *ApplicationHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	var req saveApplicationReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	res, err := h.uc.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return writeError(c, err, application.ErrNotFound)
	}
	return c.JSON(http.StatusOK, res)
}

// Import accepts a multipart form with a csv_file part.
func (h *ApplicationHandler) Import(c echo.Context) error {
	fh, err := c.FormFile("csv_file")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "csv_file", Message: "is required"}},
		})
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := h.importer.Import(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
