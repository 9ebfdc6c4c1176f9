package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cursos_app_echo/internal/evidence"
	"cursos_app_echo/internal/payments"
	"cursos_app_echo/internal/services"
	"cursos_app_echo/internal/session"
	"cursos_app_echo/web/templates/pages"
)

// multipartOverhead is the slack allowed on top of the receipt size for the
// multipart envelope
const multipartOverhead = 64 << 10

// SuccessHandler renders the order confirmation page and receives receipts
type SuccessHandler struct {
	catalog *payments.Catalog
	uploads *evidence.Service
	layouts *Layouts
}

// NewSuccessHandler creates a new SuccessHandler
func NewSuccessHandler(catalog *payments.Catalog, uploads *evidence.Service, layouts *Layouts) *SuccessHandler {
	return &SuccessHandler{catalog: catalog, uploads: uploads, layouts: layouts}
}

// SuccessPage renders /success?orderId=&method=[&payLink=]
func (h *SuccessHandler) SuccessPage(c echo.Context) error {
	var q evidence.Query
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Parámetros inválidos")
	}
	page := evidence.BuildPage(h.catalog, q)

	status := http.StatusOK
	if !page.CanUpload {
		status = http.StatusBadRequest
	}
	return h.render(c, status, page)
}

// UploadReceipt forwards the receipt file to the API. Only a successful
// upload renders the sent state.
func (h *SuccessHandler) UploadReceipt(c echo.Context) error {
	q := evidence.Query{
		OrderID: c.QueryParam("orderId"),
		Method:  c.QueryParam("method"),
		PayLink: c.QueryParam("payLink"),
	}
	page := evidence.BuildPage(h.catalog, q)

	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, h.uploads.MaxBytes()+multipartOverhead)

	var uploadErr error
	file, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			uploadErr = evidence.ErrFileTooLarge
		}
		file = nil
	}
	if uploadErr == nil {
		uploadErr = h.uploads.Upload(req.Context(), session.FromContext(c).Token(), page.Query.OrderID, file)
	}

	if uploadErr == nil {
		return h.render(c, http.StatusOK, evidence.SentPage(page.Query.OrderID))
	}
	if services.IsUnauthorized(uploadErr) {
		return h.layouts.expireSession(c)
	}

	status := http.StatusUnprocessableEntity
	switch {
	case errors.Is(uploadErr, evidence.ErrMissingOrder):
		status = http.StatusBadRequest
	case errors.Is(uploadErr, evidence.ErrFileTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(uploadErr, evidence.ErrMissingFile), errors.Is(uploadErr, evidence.ErrUnsupportedFile):
		// rejected locally, keep 422
	default:
		c.Logger().Errorf("receipt upload failed for order %s: %v", page.Query.OrderID, uploadErr)
		status = http.StatusBadGateway
	}

	page.Error = evidence.Message(uploadErr)
	return h.render(c, status, page)
}

func (h *SuccessHandler) render(c echo.Context, status int, page evidence.Page) error {
	props := pages.SuccessProps{
		Layout:        h.layouts.Build(c, "Orden creada", "account"),
		Page:          page,
		MaxReceiptMiB: h.uploads.MaxBytes() >> 20,
	}
	return render(c, status, pages.Success(props))
}
