package checkout

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"cursos_app_echo/internal/payments"
)

// Form is what the buyer submits on the checkout page
type Form struct {
	CourseSlug    string `form:"course"`
	BuyerName     string `form:"buyerName"`
	BuyerEmail    string `form:"buyerEmail"`
	Method        string `form:"method"`
	TermsAccepted string `form:"termsAccepted"`
}

// FieldErrors maps a form field to its message
type FieldErrors map[string]string

// ValidationError blocks a submission before any request is made
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "checkout form is invalid"
}

// Normalize trims user input
func (f *Form) Normalize() {
	f.CourseSlug = strings.TrimSpace(f.CourseSlug)
	f.BuyerName = strings.TrimSpace(f.BuyerName)
	f.BuyerEmail = strings.TrimSpace(f.BuyerEmail)
	f.Method = strings.TrimSpace(f.Method)
	f.TermsAccepted = strings.TrimSpace(f.TermsAccepted)
}

// AcceptedTerms reports whether the terms checkbox was sent as "true"
func (f Form) AcceptedTerms() bool {
	return strings.TrimSpace(f.TermsAccepted) == "true"
}

// Validate checks every field against the catalog and returns the messages
// to show next to each invalid field. An empty result means the form is valid.
func (f Form) Validate(catalog *payments.Catalog) FieldErrors {
	errs := FieldErrors{}

	if utf8.RuneCountInString(strings.TrimSpace(f.BuyerName)) < 2 {
		errs["buyerName"] = "El nombre debe tener al menos 2 caracteres."
	}
	if !ValidEmail(f.BuyerEmail) {
		errs["buyerEmail"] = "Ingresá un email válido."
	}
	if !catalog.Has(payments.MethodKey(f.Method)) {
		errs["method"] = "Elegí un método de pago válido."
	}
	if !f.AcceptedTerms() {
		errs["termsAccepted"] = "Debés aceptar los términos y condiciones."
	}
	if f.CourseSlug == "" {
		errs["course"] = "No se seleccionó ningún curso."
	}
	return errs
}

// ValidEmail accepts a bare address whose domain has a dot
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return at > 0 && strings.Contains(s[at+1:], ".")
}
