package checkout

import (
	"net/url"

	"cursos_app_echo/internal/payments"
)

// ConfirmationPath is the page where buyers pay or upload evidence
const ConfirmationPath = "/success"

// ConfirmationURL builds /success?orderId=<id>&method=<key>[&payLink=<url>].
// payLink is only added for REDIRECT methods known to the catalog, so its
// absence tells the confirmation page the method is MANUAL.
func ConfirmationURL(catalog *payments.Catalog, orderID string, method payments.MethodKey) string {
	u := ConfirmationPath + "?orderId=" + url.QueryEscape(orderID) + "&method=" + url.QueryEscape(string(method))

	m, ok := catalog.Lookup(method)
	if !ok {
		return u
	}
	switch m.Type {
	case payments.SettlementRedirect:
		if m.Link != "" {
			u += "&payLink=" + url.QueryEscape(m.Link)
		}
	case payments.SettlementManual:
		// instructions live on the confirmation page
	}
	return u
}
