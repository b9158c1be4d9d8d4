package notify

import "time"

const (
	KindOrderCreated = "order.created"
	KindOrderPaid    = "order.paid"
)

// Notification is the message handed to external channels (webhook relays to
// email/WhatsApp providers). It carries everything the message template
// needs so consumers never query the database.
type Notification struct {
	Kind          string    `json:"kind"`
	Folio         string    `json:"folio"`
	OrderID       int       `json:"order_id"`
	RaffleID      int       `json:"raffle_id"`
	RaffleTitle   string    `json:"raffle_title"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Tickets       []int     `json:"tickets"`
	TotalAmount   float64   `json:"total_amount"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
}
