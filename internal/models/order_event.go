package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderEventAction names what an admin did to an order
type OrderEventAction string

const (
	OrderEventStatusChanged OrderEventAction = "status_changed"
	OrderEventStaleRefused  OrderEventAction = "stale_refused"
)

// OrderEvent is a local audit record of an admin reconciliation decision
type OrderEvent struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	OrderID    string           `gorm:"type:varchar(100);index" json:"order_id"`
	Action     OrderEventAction `gorm:"type:varchar(50);not null" json:"action"`
	FromStatus OrderStatus      `gorm:"type:varchar(20)" json:"from_status"`
	ToStatus   OrderStatus      `gorm:"type:varchar(20)" json:"to_status"`
	ActorEmail string           `gorm:"type:varchar(255)" json:"actor_email"`
	Note       string           `gorm:"type:text" json:"note"`
}
