package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusIsValid(t *testing.T) {
	assert.True(t, OrderStatusPending.IsValid())
	assert.True(t, OrderStatusPaid.IsValid())
	assert.True(t, OrderStatusCancelled.IsValid())
	assert.True(t, OrderStatusExpired.IsValid())
	assert.False(t, OrderStatus("shipped").IsValid())
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusPaid.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.True(t, OrderStatusExpired.IsTerminal())
}

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to paid", OrderStatusPending, OrderStatusPaid, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"pending to expired", OrderStatusPending, OrderStatusExpired, true},
		{"paid to cancelled", OrderStatusPaid, OrderStatusCancelled, true},
		{"paid to expired", OrderStatusPaid, OrderStatusExpired, false},
		{"paid to pending", OrderStatusPaid, OrderStatusPending, false},
		{"cancelled to paid", OrderStatusCancelled, OrderStatusPaid, false},
		{"cancelled to pending", OrderStatusCancelled, OrderStatusPending, false},
		{"expired to paid", OrderStatusExpired, OrderStatusPaid, false},
		{"expired to cancelled", OrderStatusExpired, OrderStatusCancelled, false},
		{"unknown status", OrderStatus("shipped"), OrderStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRaffleInRange(t *testing.T) {
	raffle := &Raffle{TicketCount: 100}

	assert.True(t, raffle.InRange(1))
	assert.True(t, raffle.InRange(100))
	assert.False(t, raffle.InRange(0))
	assert.False(t, raffle.InRange(101))
	assert.False(t, raffle.InRange(-5))
}

func TestRaffleIsActive(t *testing.T) {
	raffle := &Raffle{Status: RaffleStatusActive}
	assert.True(t, raffle.IsActive())

	raffle.Status = RaffleStatusDraft
	assert.False(t, raffle.IsActive())

	now := raffle.CreatedAt
	raffle.Status = RaffleStatusActive
	raffle.DeletedAt = &now
	assert.False(t, raffle.IsActive())
}
