package http

import (
	"mime"
	"net/http"
	"path"
	"strconv"

	"loan-crm/internal/domain/document"
	docuc "loan-crm/internal/usecase/document"

	"github.com/labstack/echo/v4"
)

type DocumentHandler struct{ uc *docuc.Usecase }

func NewDocumentHandler(uc *docuc.Usecase) *DocumentHandler { return &DocumentHandler{uc: uc} }

func (h *DocumentHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Upload takes multipart fields application_id, title, status and file.
func (h *DocumentHandler) Upload(c echo.Context) error {
	var details []FieldError
	appID, err := strconv.ParseUint(c.FormValue("application_id"), 10, 64)
	if err != nil || appID == 0 {
		details = append(details, FieldError{Field: "application_id", Message: "must be a positive integer"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		details = append(details, FieldError{Field: "file", Message: "is required"})
	}
	if len(details) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: details})
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	dto, err := h.uc.Upload(c.Request().Context(), docuc.UploadInput{
		ApplicationID: appID,
		Title:         c.FormValue("title"),
		Status:        c.FormValue("status"),
		FileName:      fh.Filename,
		ContentType:   fh.Header.Get(echo.HeaderContentType),
		Body:          f,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// Download streams the stored file as an attachment under its original name.
func (h *DocumentHandler) Download(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c, "id")
	}
	dto, rc, err := h.uc.Open(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err, document.ErrNotFound)
	}
	defer rc.Close()

	ct := dto.ContentType
	if ct == "" {
		ct = echo.MIMEOctetStream
	}
	name := dto.OriginalName
	if name == "" {
		name = path.Base(dto.File)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	return c.Stream(http.StatusOK, ct, rc)
}
