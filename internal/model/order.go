package model

import "time"

// OrderStatus lifecycle for ticket orders.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusExpired   OrderStatus = "expired"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCancelled, OrderStatusExpired:
		return true
	}
	return false
}

// IsTerminal reports whether the order no longer holds its tickets.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusExpired
}

// CanTransitionTo checks whether the target status is reachable. Paid orders
// can only be cancelled; terminal states cannot change.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	transitions := map[OrderStatus][]OrderStatus{
		OrderStatusPending:   {OrderStatusPaid, OrderStatusCancelled, OrderStatusExpired},
		OrderStatusPaid:      {OrderStatusCancelled},
		OrderStatusCancelled: {},
		OrderStatusExpired:   {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Customer is the snapshot denormalized onto an order at creation time.
type Customer struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    *string `json:"email,omitempty"`
	District *string `json:"district,omitempty"`
}

// Order reserves a set of numbered tickets on a raffle. Tickets stay held
// while the status is non-terminal; ExpiresAt bounds how long a pending
// order may sit unpaid.
type Order struct {
	ID            int         `json:"id" db:"id"`
	Folio         string      `json:"folio" db:"folio"`
	RaffleID      int         `json:"raffle_id" db:"raffle_id"`
	UserID        int         `json:"user_id" db:"user_id"`
	Customer      Customer    `json:"customer"`
	Tickets       []int       `json:"tickets" db:"tickets"`
	TotalAmount   float64     `json:"total_amount" db:"total_amount"`
	Status        OrderStatus `json:"status" db:"status"`
	PaymentMethod *string     `json:"payment_method,omitempty" db:"payment_method"`
	Notes         *string     `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
	ExpiresAt     time.Time   `json:"expires_at" db:"expires_at"`
	DeletedAt     *time.Time  `json:"deleted_at,omitempty" db:"deleted_at"`
}

func (o *Order) IsDeleted() bool {
	return o.DeletedAt != nil
}

type CreateOrderRequest struct {
	RaffleID      string   `json:"raffle_id" binding:"required"`
	Customer      Customer `json:"customer" binding:"required"`
	Tickets       []int    `json:"tickets" binding:"required,min=1"`
	PaymentMethod *string  `json:"payment_method"`
	Notes         *string  `json:"notes"`
}
