package model

import (
	"time"

	"github.com/google/uuid"
)

// Winner is a confirmed draw result. Raffle title and draw date are
// denormalized for display.
type Winner struct {
	ID           int        `json:"id" db:"id"`
	WinnerID     uuid.UUID  `json:"winner_id" db:"winner_id"`
	RaffleID     int        `json:"raffle_id" db:"raffle_id"`
	OrderID      int        `json:"order_id" db:"order_id"`
	UserID       int        `json:"user_id" db:"user_id"`
	TicketNumber int        `json:"ticket_number" db:"ticket_number"`
	RaffleTitle  string     `json:"raffle_title" db:"raffle_title"`
	DrawDate     *time.Time `json:"draw_date,omitempty" db:"draw_date"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// DrawCandidate is a draw result that has not been persisted yet. The admin
// may re-roll; only ConfirmWinner commits a Winner row.
type DrawCandidate struct {
	RaffleID     int      `json:"raffle_id"`
	TicketNumber int      `json:"ticket_number"`
	OrderID      int      `json:"order_id"`
	Folio        string   `json:"folio"`
	Customer     Customer `json:"customer"`
}

type ConfirmWinnerRequest struct {
	TicketNumber int `json:"ticket_number" binding:"required,min=1"`
}
