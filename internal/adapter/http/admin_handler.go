package http

import (
	"net/http"

	adminuc "loan-crm/internal/usecase/admin"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct{ uc *adminuc.Usecase }

func NewAdminHandler(uc *adminuc.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

// SetupAdmin answers 201 when the account was created and 200 when it
// already existed.
func (h *AdminHandler) SetupAdmin(c echo.Context) error {
	res, err := h.uc.Bootstrap(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	if res.Created {
		return c.JSON(http.StatusCreated, res)
	}
	return c.JSON(http.StatusOK, res)
}
