package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// TicketHoldManager is the fast path in front of the reservation table: an
// all-or-nothing hold of specific ticket numbers on a Redis set. The database
// unique index stays authoritative; the hold set absorbs concurrent
// storefront submissions before they reach Postgres.
type TicketHoldManager interface {
	// WarmUpHolds resets the hold set to the given numbers, typically the
	// reserved numbers loaded from the database when a raffle is activated.
	WarmUpHolds(ctx context.Context, raffleID int, numbers []int) error
	// HoldTickets atomically holds all numbers, or none. The returned slice
	// lists the numbers that were already held; it is empty on success.
	HoldTickets(ctx context.Context, raffleID int, numbers []int) ([]int, error)
	// ReleaseTickets drops holds, used on rollback, cancellation and expiry.
	ReleaseTickets(ctx context.Context, raffleID int, numbers []int) error
	// ClearHolds removes the whole hold set, used when a raffle finishes.
	ClearHolds(ctx context.Context, raffleID int) error
}

type TicketHoldManagerImpl struct {
	client *redis.Client
}

func NewTicketHoldManager(client *redis.Client) TicketHoldManager {
	return &TicketHoldManagerImpl{
		client: client,
	}
}

func (m *TicketHoldManagerImpl) getHeldKey(raffleID int) string {
	return fmt.Sprintf("raffle:%d:held", raffleID)
}

// holdScript checks every requested number before touching the set, so two
// overlapping requests can never both succeed.
const holdScript = `
	local held_key = KEYS[1]

	local conflicts = {}
	for i = 1, #ARGV do
		if redis.call('SISMEMBER', held_key, ARGV[i]) == 1 then
			conflicts[#conflicts + 1] = ARGV[i]
		end
	end

	if #conflicts > 0 then
		return conflicts
	end

	redis.call('SADD', held_key, unpack(ARGV))
	return {}
`

func (m *TicketHoldManagerImpl) WarmUpHolds(ctx context.Context, raffleID int, numbers []int) error {
	key := m.getHeldKey(raffleID)

	pipe := m.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(numbers) > 0 {
		pipe.SAdd(ctx, key, toMembers(numbers)...)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (m *TicketHoldManagerImpl) HoldTickets(ctx context.Context, raffleID int, numbers []int) ([]int, error) {
	if len(numbers) == 0 {
		return nil, nil
	}

	key := m.getHeldKey(raffleID)

	result, err := m.client.Eval(ctx, holdScript, []string{key}, toMembers(numbers)...).Result()
	if err != nil {
		return nil, err
	}

	resSlice, ok := result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected hold script result: %T", result)
	}

	conflicts := make([]int, 0, len(resSlice))
	for _, v := range resSlice {
		n, err := memberToInt(v)
		if err != nil {
			return nil, err
		}
		conflicts = append(conflicts, n)
	}

	return conflicts, nil
}

func (m *TicketHoldManagerImpl) ReleaseTickets(ctx context.Context, raffleID int, numbers []int) error {
	if len(numbers) == 0 {
		return nil
	}
	return m.client.SRem(ctx, m.getHeldKey(raffleID), toMembers(numbers)...).Err()
}

func (m *TicketHoldManagerImpl) ClearHolds(ctx context.Context, raffleID int) error {
	return m.client.Del(ctx, m.getHeldKey(raffleID)).Err()
}

func toMembers(numbers []int) []interface{} {
	members := make([]interface{}, len(numbers))
	for i, n := range numbers {
		members[i] = n
	}
	return members
}

func memberToInt(v interface{}) (int, error) {
	switch member := v.(type) {
	case int64:
		return int(member), nil
	case string:
		n, err := strconv.Atoi(member)
		if err != nil {
			return 0, fmt.Errorf("invalid ticket number in hold set: %q", member)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("invalid ticket number in hold set: %T", v)
	}
}
