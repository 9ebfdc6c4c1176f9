package models

import "time"

// OrderStatus is the lifecycle status of an order as reported by the backend
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusRejected  OrderStatus = "REJECTED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is expected
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusPaid, OrderStatusRejected, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is the secondary review status of a single payment attempt
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusPendingReview PaymentStatus = "PENDING_REVIEW"
	PaymentStatusApproved      PaymentStatus = "APPROVED"
	PaymentStatusRejected      PaymentStatus = "REJECTED"
)

// Payment is one attempt to pay an order
type Payment struct {
	ID         string        `json:"id,omitempty"`
	Method     string        `json:"method"`
	Status     PaymentStatus `json:"status"`
	ReceiptURL *string       `json:"receiptUrl"`
	Amount     float64       `json:"amount"`
	Currency   string        `json:"currency"`
	CreatedAt  time.Time     `json:"createdAt,omitempty"`
}

// Order is a buyer's purchase intent for a course
type Order struct {
	ID         string      `json:"id"`
	Status     OrderStatus `json:"status"`
	BuyerName  string      `json:"buyerName"`
	BuyerEmail string      `json:"buyerEmail"`
	Course     Course      `json:"course"`
	Payments   []Payment   `json:"payments"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// LatestPayment returns the active payment attempt. The backend lists
// payments newest first.
func (o Order) LatestPayment() (Payment, bool) {
	if len(o.Payments) == 0 {
		return Payment{}, false
	}
	return o.Payments[0], true
}

// ShortID is the reference shown to buyers (last 6 characters)
func (o Order) ShortID() string {
	return ShortOrderID(o.ID)
}

// ShortOrderID returns the last 6 characters of an order id
func ShortOrderID(id string) string {
	r := []rune(id)
	if len(r) <= 6 {
		return id
	}
	return string(r[len(r)-6:])
}
