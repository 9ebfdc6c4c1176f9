package evidence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"cursos_app_echo/internal/services"
)

// DefaultMaxReceiptBytes caps receipt uploads when no limit is configured
const DefaultMaxReceiptBytes int64 = 10 << 20

var (
	ErrMissingOrder    = errors.New("receipt upload without order id")
	ErrMissingFile     = errors.New("receipt upload without file")
	ErrFileTooLarge    = errors.New("receipt file too large")
	ErrUnsupportedFile = errors.New("receipt is not an image or pdf")
)

var messages = map[error]string{
	ErrMissingOrder:    "No se seleccionó un archivo o la orden no es válida.",
	ErrMissingFile:     "No se seleccionó un archivo.",
	ErrFileTooLarge:    "El archivo es demasiado grande.",
	ErrUnsupportedFile: "El comprobante debe ser una imagen o un PDF.",
}

// ReceiptUploader forwards receipts to the API
type ReceiptUploader interface {
	UploadReceipt(ctx context.Context, token, orderID string, receipt services.Receipt) error
}

// Service validates and forwards payment receipts
type Service struct {
	uploader ReceiptUploader
	maxBytes int64
}

// NewService creates an upload service; maxBytes <= 0 uses DefaultMaxReceiptBytes
func NewService(uploader ReceiptUploader, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxReceiptBytes
	}
	return &Service{uploader: uploader, maxBytes: maxBytes}
}

// MaxBytes is the accepted receipt size
func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}

// Upload sends one receipt for orderID. Local checks run before any request,
// so a missing order or bad file never reaches the API.
func (s *Service) Upload(ctx context.Context, token, orderID string, file *multipart.FileHeader) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return ErrMissingOrder
	}
	if file == nil {
		return ErrMissingFile
	}
	if file.Size > s.maxBytes {
		return ErrFileTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return fmt.Errorf("open receipt: %w", err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read receipt: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return ErrMissingFile
	}

	contentType := http.DetectContentType(head)
	if !acceptedType(contentType) {
		return ErrUnsupportedFile
	}

	err = s.uploader.UploadReceipt(ctx, token, orderID, services.Receipt{
		Filename:    file.Filename,
		ContentType: contentType,
		Body:        io.MultiReader(bytes.NewReader(head), f),
	})
	if err != nil {
		return fmt.Errorf("upload receipt for order %s: %w", orderID, err)
	}
	return nil
}

func acceptedType(contentType string) bool {
	mediaType := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	return strings.HasPrefix(mediaType, "image/") || mediaType == "application/pdf"
}

// Message is the text shown to the buyer for an upload failure
func Message(err error) string {
	for known, msg := range messages {
		if errors.Is(err, known) {
			return msg
		}
	}
	return services.ErrorMessage(err, "Error al subir el comprobante")
}
