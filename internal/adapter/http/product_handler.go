package http

import (
	"net/http"

	"loan-crm/internal/domain/product"
	productuc "loan-crm/internal/usecase/product"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProductHandler struct{ uc *productuc.Usecase }

func NewProductHandler(uc *productuc.Usecase) *ProductHandler { return &ProductHandler{uc: uc} }

// omitted decimals fall back to the product defaults
type createProductReq struct {
	Name                string           `json:"name"                 validate:"required,max=200"`
	InterestRate        *decimal.Decimal `json:"interest_rate"        validate:"omitempty,nonneg,dec2"`
	ProcessingFee       *decimal.Decimal `json:"processing_fee"       validate:"omitempty,nonneg,dec2"`
	MinAmount           *decimal.Decimal `json:"min_amount"           validate:"omitempty,nonneg,dec2"`
	MaxAmount           *decimal.Decimal `json:"max_amount"           validate:"omitempty,nonneg,dec2"`
	EligibilityCriteria string           `json:"eligibility_criteria"`
	Description         string           `json:"description"`
}

func (h *ProductHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), productuc.CreateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err, product.ErrNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
