package payments

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// MethodKey identifies a payment method, e.g. "TRANSFER"
type MethodKey string

const (
	MethodMercadoPago MethodKey = "MERCADOPAGO"
	MethodTransfer    MethodKey = "TRANSFER"
	MethodTipfunder   MethodKey = "TIPFUNDER"
	MethodUSDT        MethodKey = "USDT"
	MethodAirtm       MethodKey = "AIRTM"
	MethodSkrill      MethodKey = "SKRILL"
	MethodPrex        MethodKey = "PREX"
)

// SettlementType says where the buyer settles the payment
type SettlementType string

const (
	// SettlementRedirect is settled on an external processor's site
	SettlementRedirect SettlementType = "REDIRECT"
	// SettlementManual is settled out-of-band and evidenced by a receipt
	SettlementManual SettlementType = "MANUAL"
)

// Valid reports whether t is one of the recognised settlement types
func (t SettlementType) Valid() bool {
	switch t {
	case SettlementRedirect, SettlementManual:
		return true
	}
	return false
}

// LinkKind says what a method link points to
type LinkKind string

const (
	LinkPaymentPage LinkKind = "PAYMENT_PAGE"
	LinkDocument    LinkKind = "DOCUMENT"
)

// Instruction is one labelled line of manual payment data (alias, CBU, wallet...)
type Instruction struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Method is the static configuration of a payment method
type Method struct {
	Key         MethodKey      `json:"key"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Type        SettlementType `json:"type"`
	Link        string         `json:"link,omitempty"`
	LinkKind    LinkKind       `json:"linkKind,omitempty"`
	Data        []Instruction  `json:"data,omitempty"`
	Warning     string         `json:"warning,omitempty"`
}

// usdSettling lists the methods charged in USD instead of ARS
var usdSettling = map[MethodKey]bool{
	MethodTipfunder: true,
	MethodUSDT:      true,
	MethodAirtm:     true,
	MethodSkrill:    true,
	MethodPrex:      true,
}

// SettlesInUSD reports whether orders paid with key are priced in USD
func SettlesInUSD(key MethodKey) bool {
	return usdSettling[key]
}

// Catalog is a read-only, ordered set of payment methods
type Catalog struct {
	order   []MethodKey
	methods map[MethodKey]Method
}

// NewCatalog builds a catalog keeping the given display order. Duplicate keys,
// unknown settlement types and REDIRECT methods without a link are rejected.
func NewCatalog(methods ...Method) (*Catalog, error) {
	c := &Catalog{methods: make(map[MethodKey]Method, len(methods))}
	for _, m := range methods {
		if m.Key == "" {
			return nil, fmt.Errorf("payment method without key")
		}
		if _, exists := c.methods[m.Key]; exists {
			return nil, fmt.Errorf("duplicate payment method %s", m.Key)
		}
		if !m.Type.Valid() {
			return nil, fmt.Errorf("payment method %s: unknown type %q", m.Key, m.Type)
		}
		if m.Type == SettlementRedirect && m.Link == "" {
			return nil, fmt.Errorf("payment method %s: redirect method requires a link", m.Key)
		}
		if m.Link != "" && m.LinkKind == "" {
			m.LinkKind = GuessLinkKind(m.Link)
		}
		c.order = append(c.order, m.Key)
		c.methods[m.Key] = m
	}
	return c, nil
}

// Lookup returns the method for key. Unknown keys are not an error: orders
// may reference methods removed from the catalog after they were created.
func (c *Catalog) Lookup(key MethodKey) (Method, bool) {
	m, ok := c.methods[key]
	return m, ok
}

// Describe returns the method for key or a neutral placeholder
func (c *Catalog) Describe(key MethodKey) Method {
	if m, ok := c.methods[key]; ok {
		return m
	}
	return Method{Key: key, Label: "Método desconocido"}
}

// Has reports whether key is part of the catalog
func (c *Catalog) Has(key MethodKey) bool {
	_, ok := c.methods[key]
	return ok
}

// Keys returns the method keys in display order
func (c *Catalog) Keys() []MethodKey {
	keys := make([]MethodKey, len(c.order))
	copy(keys, c.order)
	return keys
}

// Methods returns the methods in display order
func (c *Catalog) Methods() []Method {
	out := make([]Method, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.methods[k])
	}
	return out
}

// GuessLinkKind classifies a link by its file extension. Only used when a
// method does not declare its LinkKind.
func GuessLinkKind(link string) LinkKind {
	path := strings.ToLower(link)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	for _, ext := range []string{".pdf", ".doc", ".docx"} {
		if strings.HasSuffix(path, ext) {
			return LinkDocument
		}
	}
	return LinkPaymentPage
}

// LoadCatalog reads a JSON array of methods from path
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read payment methods file: %w", err)
	}
	var methods []Method
	if err := json.Unmarshal(data, &methods); err != nil {
		return nil, fmt.Errorf("failed to parse payment methods file: %w", err)
	}
	return NewCatalog(methods...)
}
