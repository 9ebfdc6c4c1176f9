package projection

import (
	"strings"

	"cursos_app_echo/internal/checkout"
	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/payments"
)

// DefaultResumeMethod is used to resume orders that have no payment yet
const DefaultResumeMethod = payments.MethodTipfunder

// Style is the badge color class
type Style string

const (
	StyleApproved  Style = "approved"
	StylePending   Style = "pending"
	StyleReview    Style = "review"
	StyleRejected  Style = "rejected"
	StyleCancelled Style = "cancelled"
)

// ActionKind is what the buyer can do with an order
type ActionKind string

const (
	ActionNone           ActionKind = "NONE"
	ActionVerifying      ActionKind = "VERIFYING"
	ActionOpenCourse     ActionKind = "OPEN_COURSE"
	ActionResumePayment  ActionKind = "RESUME_PAYMENT"
	ActionContactSupport ActionKind = "CONTACT_SUPPORT"
)

// AccessChoice is one entry of the course access list
type AccessChoice struct {
	Title string
	URL   string
	Icon  string
}

// Action is the single button (or indicator) shown next to an order
type Action struct {
	Kind     ActionKind
	Label    string
	URL      string
	External bool
	Choices  []AccessChoice
}

// View is the buyer-facing presentation of an order
type View struct {
	Label  string
	Style  Style
	Action Action
}

// Links are the configured destinations used by actions
type Links struct {
	Support string
}

// IsUnderReview reports whether a pending order already has a receipt waiting
// for an admin
func IsUnderReview(o models.Order) bool {
	if o.Status != models.OrderStatusPending {
		return false
	}
	for _, p := range o.Payments {
		if p.Status == models.PaymentStatusPendingReview {
			return true
		}
	}
	return false
}

// Project derives the badge and action for an order. It is total: statuses it
// does not know render as cancelled.
func Project(o models.Order, catalog *payments.Catalog, links Links) View {
	if IsUnderReview(o) {
		return View{
			Label:  "En Revisión",
			Style:  StyleReview,
			Action: Action{Kind: ActionVerifying, Label: "Verificando pago"},
		}
	}

	switch o.Status {
	case models.OrderStatusPaid:
		return View{Label: "Aprobado", Style: StyleApproved, Action: openCourse(o.Course)}
	case models.OrderStatusPending:
		return View{
			Label: "Pago Pendiente",
			Style: StylePending,
			Action: Action{
				Kind:  ActionResumePayment,
				Label: "Continuar Pago / Subir",
				URL:   ResumeURL(o, catalog),
			},
		}
	case models.OrderStatusRejected:
		return View{
			Label: "Rechazado",
			Style: StyleRejected,
			Action: Action{
				Kind:     ActionContactSupport,
				Label:    "Contactar soporte",
				URL:      links.Support,
				External: true,
			},
		}
	case models.OrderStatusCancelled:
		// same view as unknown statuses
	}
	return View{Label: "Cancelado", Style: StyleCancelled, Action: Action{Kind: ActionNone}}
}

// ResumeURL rebuilds the confirmation URL checkout produced for the order's
// latest payment attempt
func ResumeURL(o models.Order, catalog *payments.Catalog) string {
	method := DefaultResumeMethod
	if p, ok := o.LatestPayment(); ok && p.Method != "" {
		method = payments.MethodKey(p.Method)
	}
	return checkout.ConfirmationURL(catalog, o.ID, method)
}

func openCourse(course models.Course) Action {
	access := course.Access()
	action := Action{Kind: ActionOpenCourse, Label: "Acceder al curso"}

	switch access.Kind {
	case models.AccessMultipleLinks:
		action.Choices = AccessChoices(access.Links)
	case models.AccessSingleLink:
		action.URL = access.URL
		action.External = true
	case models.AccessInternal:
		action.URL = access.URL
	}
	return action
}

// AccessChoices turns named access links into the choice list entries
func AccessChoices(links []models.AccessLink) []AccessChoice {
	choices := make([]AccessChoice, 0, len(links))
	for _, l := range links {
		choices = append(choices, AccessChoice{Title: l.Title, URL: l.URL, Icon: IconFor(l.Title)})
	}
	return choices
}

// IconFor hints the kind of content behind an access link from its title
func IconFor(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "telegram"):
		return "✈️"
	case strings.Contains(t, "drive"):
		return "📂"
	case strings.Contains(t, "zoom"), strings.Contains(t, "vivo"):
		return "📹"
	case strings.Contains(t, "grabación"), strings.Contains(t, "grabacion"):
		return "📼"
	}
	return "🔗"
}

// Row is an order with its projected view, as listed on the account page
type Row struct {
	Order   models.Order
	ShortID string
	View    View
}

// Rows projects every order
func Rows(orders []models.Order, catalog *payments.Catalog, links Links) []Row {
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, Row{Order: o, ShortID: o.ShortID(), View: Project(o, catalog, links)})
	}
	return rows
}
