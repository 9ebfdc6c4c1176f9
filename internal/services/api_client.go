package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"cursos_app_echo/internal/models"
)

// APIError is a non-2xx answer from the course-sales API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsUnauthorized reports whether err is a 401 from the API
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// ErrorMessage extracts a user-facing message from err, falling back to def
func ErrorMessage(err error, def string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return def
}

// CreateOrderRequest is the body of POST /orders
type CreateOrderRequest struct {
	BuyerName     string `json:"buyerName"`
	BuyerEmail    string `json:"buyerEmail"`
	Method        string `json:"method"`
	CourseSlug    string `json:"courseSlug"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Name     string   `json:"name"`
	Lastname string   `json:"lastname"`
	Age      *int     `json:"age,omitempty"`
	Telegram string   `json:"telegram"`
	Master   []string `json:"master"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
}

// Receipt is an uploaded payment evidence file
type Receipt struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// APIClient talks to the course-sales REST API
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a client for the API rooted at baseURL
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *APIClient) makeRequest(ctx context.Context, method, endpoint, token string, payload, out interface{}) error {
	var bodyReader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		bodyReader = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, token, out)
}

func (c *APIClient) do(req *http.Request, token string, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Message = payload.Message
			if apiErr.Message == "" {
				apiErr.Message = payload.Error
			}
		}
		return apiErr
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ListCourses fetches GET /courses
func (c *APIClient) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.makeRequest(ctx, http.MethodGet, "/courses", "", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Me fetches the user owning token
func (c *APIClient) Me(ctx context.Context, token string) (models.User, error) {
	var user models.User
	err := c.makeRequest(ctx, http.MethodGet, "/auth/me", token, nil, &user)
	return user, err
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token
func (c *APIClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	payload := map[string]string{"email": email, "password": password}
	if err := c.makeRequest(ctx, http.MethodPost, "/auth/login", "", payload, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response without token")
	}
	return resp.Token, nil
}

// Register creates an account and returns its session token
func (c *APIClient) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var resp tokenResponse
	if err := c.makeRequest(ctx, http.MethodPost, "/auth/register", "", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("register response without token")
	}
	return resp.Token, nil
}

// MyOrders fetches GET /orders/me
func (c *APIClient) MyOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.makeRequest(ctx, http.MethodGet, "/orders/me", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AdminOrders fetches GET /orders/admin
func (c *APIClient) AdminOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.makeRequest(ctx, http.MethodGet, "/orders/admin", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder calls POST /orders
func (c *APIClient) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (models.Order, error) {
	var order models.Order
	if err := c.makeRequest(ctx, http.MethodPost, "/orders", token, req, &order); err != nil {
		return models.Order{}, err
	}
	if order.ID == "" {
		return models.Order{}, fmt.Errorf("create order response without id")
	}
	return order, nil
}

// UpdateOrderStatus calls PUT /orders/{id}/status
func (c *APIClient) UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) (models.Order, error) {
	var order models.Order
	endpoint := "/orders/" + url.PathEscape(orderID) + "/status"
	payload := map[string]models.OrderStatus{"status": status}
	err := c.makeRequest(ctx, http.MethodPut, endpoint, token, payload, &order)
	return order, err
}

// UploadReceipt streams a receipt file as multipart field "file" to
// POST /orders/{id}/receipt
func (c *APIClient) UploadReceipt(ctx context.Context, token, orderID string, receipt Receipt) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, receipt.Filename))
	contentType := receipt.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create multipart part: %w", err)
	}
	if _, err := io.Copy(part, receipt.Body); err != nil {
		return fmt.Errorf("failed to copy receipt: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	endpoint := "/orders/" + url.PathEscape(orderID) + "/receipt"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, token, nil)
}
