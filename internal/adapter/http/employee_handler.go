package http

import (
	"net/http"

	"loan-crm/internal/domain/employee"
	empuc "loan-crm/internal/usecase/employee"

	"github.com/labstack/echo/v4"
)

type EmployeeHandler struct{ uc *empuc.Usecase }

func NewEmployeeHandler(uc *empuc.Usecase) *EmployeeHandler { return &EmployeeHandler{uc: uc} }

type saveEmployeeReq struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Email       string `json:"email"       validate:"required,email,max=254"`
	Designation string `json:"designation" validate:"omitempty,max=50"`
}

func (h *EmployeeHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	var req saveEmployeeReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), empuc.SaveInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	var req saveEmployeeReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), id, empuc.SaveInput(req))
	if err != nil {
		return writeError(c, err, employee.ErrNotFound)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err, employee.ErrNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
