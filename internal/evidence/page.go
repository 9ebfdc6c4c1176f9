package evidence

import (
	"net/url"
	"strings"

	"cursos_app_echo/internal/models"
	"cursos_app_echo/internal/payments"
)

// State is where the buyer is on the confirmation page
type State string

const (
	StateAwaitingEvidence State = "AWAITING_EVIDENCE"
	StateEvidenceSent     State = "EVIDENCE_SENT"
)

// Query is what the checkout redirect carries to /success
type Query struct {
	OrderID string `query:"orderId" form:"orderId"`
	Method  string `query:"method" form:"method"`
	PayLink string `query:"payLink" form:"payLink"`
}

// CallToAction is the external step shown before the upload
type CallToAction struct {
	Label string
	URL   string
	Kind  payments.LinkKind
}

// Page is everything the confirmation template needs
type Page struct {
	State   State
	Query   Query
	ShortID string

	Method      payments.Method
	KnownMethod bool

	// PayStep is step 1 when a usable payLink was carried in the URL
	PayStep *CallToAction

	ShowInstructions bool
	CanUpload        bool
	Error            string
}

// Step numbers the upload block after the optional pay step
func (p Page) UploadStep() int {
	if p.PayStep != nil {
		return 2
	}
	return 1
}

// BuildPage derives the AWAITING_EVIDENCE page from the confirmation query.
// Unknown methods render a neutral page that still accepts a receipt when an
// order id is present.
func BuildPage(catalog *payments.Catalog, q Query) Page {
	q.OrderID = strings.TrimSpace(q.OrderID)
	q.Method = strings.TrimSpace(q.Method)
	q.PayLink = strings.TrimSpace(q.PayLink)

	key := payments.MethodKey(q.Method)
	method, known := catalog.Lookup(key)
	if !known {
		method = catalog.Describe(key)
	}

	page := Page{
		State:       StateAwaitingEvidence,
		Query:       q,
		ShortID:     models.ShortOrderID(q.OrderID),
		Method:      method,
		KnownMethod: known,
		CanUpload:   q.OrderID != "",
	}

	if link, ok := safeLink(q.PayLink); ok {
		kind := payments.GuessLinkKind(link)
		if known && method.Type == payments.SettlementRedirect && method.LinkKind != "" {
			kind = method.LinkKind
		}
		page.PayStep = &CallToAction{Label: ctaLabel(kind), URL: link, Kind: kind}
	} else {
		q.PayLink = ""
		page.Query = q
	}

	if known {
		switch method.Type {
		case payments.SettlementManual:
			page.ShowInstructions = true
		case payments.SettlementRedirect:
			// the pay step is the instruction
		}
	}

	if !page.CanUpload {
		page.Error = Message(ErrMissingOrder)
	}
	return page
}

// SentPage is the terminal page rendered after a successful upload
func SentPage(orderID string) Page {
	return Page{
		State:   StateEvidenceSent,
		Query:   Query{OrderID: orderID},
		ShortID: models.ShortOrderID(orderID),
	}
}

func ctaLabel(kind payments.LinkKind) string {
	if kind == payments.LinkDocument {
		return "Descargar instrucciones"
	}
	return "Ir a Pagar"
}

// safeLink accepts absolute http(s) URLs only, the query is user-controlled
func safeLink(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.String(), true
}

