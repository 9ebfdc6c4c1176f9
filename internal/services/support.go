package services

import (
	"strings"
	"unicode"
)

// NormalizeWhatsappNumber reduces a phone number to the digits wa.me expects,
// standardizing Argentine numbers written with a leading 0 to the 54 country code
func NormalizeWhatsappNumber(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimSuffix(phone, "@c.us")

	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if strings.HasPrefix(digits, "0") {
		digits = "54" + strings.TrimPrefix(digits, "0")
	}
	return digits
}

// SupportURL returns where buyers contact support: a wa.me link when a
// WhatsApp number is configured, otherwise fallback
func SupportURL(whatsapp, fallback string) string {
	if n := NormalizeWhatsappNumber(whatsapp); n != "" {
		return "https://wa.me/" + n
	}
	return fallback
}
