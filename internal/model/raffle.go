package model

import (
	"time"

	"github.com/google/uuid"
)

// RaffleStatus lifecycle: draft -> active -> finished.
type RaffleStatus string

const (
	RaffleStatusDraft    RaffleStatus = "draft"
	RaffleStatusActive   RaffleStatus = "active"
	RaffleStatusFinished RaffleStatus = "finished"
)

func (s RaffleStatus) IsValid() bool {
	switch s {
	case RaffleStatusDraft, RaffleStatusActive, RaffleStatusFinished:
		return true
	}
	return false
}

// Raffle is a catalog entry with a finite set of numbered tickets 1..TicketCount.
// SoldCount is only ever changed in the same transaction that inserts or
// deletes reservation rows, so it always matches the occupied-ticket count.
type Raffle struct {
	ID          int          `json:"id" db:"id"`
	RaffleID    uuid.UUID    `json:"raffle_id" db:"raffle_id"`
	Slug        string       `json:"slug" db:"slug"`
	Title       string       `json:"title" db:"title"`
	Description *string      `json:"description,omitempty" db:"description"`
	Images      []string     `json:"images" db:"images"`
	Price       float64      `json:"price" db:"price"`
	TicketCount int          `json:"ticket_count" db:"ticket_count"`
	SoldCount   int          `json:"sold_count" db:"sold_count"`
	DrawDate    *time.Time   `json:"draw_date,omitempty" db:"draw_date"`
	Status      RaffleStatus `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time   `json:"deleted_at,omitempty" db:"deleted_at"`
}

func (r *Raffle) IsDeleted() bool {
	return r.DeletedAt != nil
}

func (r *Raffle) IsActive() bool {
	return !r.IsDeleted() && r.Status == RaffleStatusActive
}

// InRange reports whether n is a valid ticket number for this raffle.
func (r *Raffle) InRange(n int) bool {
	return n >= 1 && n <= r.TicketCount
}

type CreateRaffleRequest struct {
	Slug        string     `json:"slug" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Images      []string   `json:"images"`
	Price       float64    `json:"price" binding:"required,gt=0"`
	TicketCount int        `json:"ticket_count" binding:"required,min=1"`
	DrawDate    *time.Time `json:"draw_date"`
}

type UpdateRaffleParams struct {
	Slug        *string    `json:"slug"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Images      []string   `json:"images"`
	Price       *float64   `json:"price"`
	DrawDate    *time.Time `json:"draw_date"`
}
