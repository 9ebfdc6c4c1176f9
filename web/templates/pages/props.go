package pages

import (
	"cursos_app_echo/internal/evidence"
	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/payments"
	"cursos_app_echo/internal/projection"
	"cursos_app_echo/web/templates/shared"
)

type ErrorPageProps struct {
	shared.Layout
	ErrorTitle   string
	ErrorMessage string
	BackLink     string
	BackText     string
}

type LoginProps struct {
	shared.Layout
	Email  string
	Next   string
	Errors map[string]string
	Notice string
}

type RegisterProps struct {
	shared.Layout
	Name     string
	Lastname string
	Email    string
	Telegram string
	Age      string
	Master   map[string]bool
	Courses  []models.Course
	Errors   map[string]string
	Notice   string
}

type CourseCard struct {
	Course models.Course
	Price  string
}

type CoursesListProps struct {
	shared.Layout
	Courses   []CourseCard
	LoadError string
}

type CourseDetailProps struct {
	shared.Layout
	Course      models.Course
	Price       string
	PriceUSD    string
	CheckoutURL string
}

type MethodOption struct {
	Method   payments.Method
	Price    string
	Selected bool
}

type CheckoutProps struct {
	shared.Layout
	Course        models.Course
	BuyerName     string
	BuyerEmail    string
	TermsAccepted bool
	Methods       []MethodOption
	Errors        map[string]string
	Notice        string
}

type SuccessProps struct {
	shared.Layout
	Page          evidence.Page
	MaxReceiptMiB int64
}

type AccountProps struct {
	shared.Layout
	Rows      []projection.Row
	LoadError string
}

type AdminOrdersProps struct {
	shared.Layout
	Rows      []projection.AdminRow
	History   map[string][]models.OrderEvent
	LoadError string
}

type AdminConfirmProps struct {
	shared.Layout
	Order       models.Order
	ShortID     string
	Target      models.OrderStatus
	TargetLabel string
	ActionURL   string
	Events      []models.OrderEvent
}

type TermsProps struct {
	shared.Layout
}
