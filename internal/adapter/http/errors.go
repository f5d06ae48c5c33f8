package http

import (
	"errors"
	"net/http"
	"strconv"

	"loan-crm/internal/domain/application"
	"loan-crm/internal/domain/employee"
	"loan-crm/internal/domain/product"
	adminuc "loan-crm/internal/usecase/admin"
	docuc "loan-crm/internal/usecase/document"
	empuc "loan-crm/internal/usecase/employee"
	"loan-crm/internal/usecase/leadimport"
	productuc "loan-crm/internal/usecase/product"

	"github.com/labstack/echo/v4"
)

// fieldSentinels maps usecase validation errors onto the request field
// that caused them.
var fieldSentinels = []struct {
	err   error
	field string
}{
	{application.ErrNameRequired, "name"},
	{application.ErrAssigneeRequired, "assigned_to_id"},
	{application.ErrInvalidAmount, "amount"},
	{application.ErrInvalidStatus, "status"},
	{application.ErrInvalidDocumentStatus, "document_status"},
	{application.ErrInvalidEmploymentType, "employment_type"},
	{application.ErrNotFound, "application_id"},
	{employee.ErrNotFound, "assigned_to_id"},
	{employee.ErrInvalidDesignation, "designation"},
	{empuc.ErrNameRequired, "name"},
	{product.ErrNotFound, "loan_product_id"},
	{product.ErrInvalidBounds, "min_amount"},
	{productuc.ErrNameRequired, "name"},
	{productuc.ErrNegative, "_"},
	{docuc.ErrTitleRequired, "title"},
	{docuc.ErrTitleTooLong, "title"},
	{docuc.ErrFileRequired, "file"},
	{leadimport.ErrInvalidCSV, "csv_file"},
	{adminuc.ErrUsernameRequired, "username"},
}

// writeError maps err to a response. notFound lists the sentinels that
// mean the addressed resource itself is missing (404); the same sentinel
// elsewhere refers to a field and is a validation failure (422).
// Unknown errors are returned to echo's error handler (500).
func writeError(c echo.Context, err error, notFound ...error) error {
	for _, nf := range notFound {
		if errors.Is(err, nf) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
	}
	if errors.Is(err, employee.ErrDuplicateEmail) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	for _, fs := range fieldSentinels {
		if errors.Is(err, fs.err) {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: []FieldError{{Field: fs.field, Message: err.Error()}},
			})
		}
	}
	return err
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}

// bindValid binds the body into req and validates it. It returns false
// when a response has already been written.
func bindValid(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, invalidBody(c)
	}
	if err := c.Validate(req); err != nil {
		return false, validationFailed(c, err)
	}
	return true, nil
}

func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

func invalidID(c echo.Context, name string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " path param"})
}
