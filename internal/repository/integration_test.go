package repository_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luckysnap/backend/config"
	"github.com/luckysnap/backend/internal/database"
	"github.com/luckysnap/backend/internal/model"
	"github.com/luckysnap/backend/internal/repository"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	cfg := config.LoadTestConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		fmt.Println("test database unavailable, skipping repository tests:", err)
		os.Exit(0)
	}

	if err := database.RunMigrations(&cfg.Database); err != nil {
		fmt.Println("migrations failed:", err)
		pool.Close()
		os.Exit(1)
	}

	testPool = pool
	code := m.Run()
	pool.Close()
	os.Exit(code)
}

func resetTables(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := testPool.Exec(ctx, `
		TRUNCATE ticket_reservations, winners, orders, users, raffles RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
	_, err = testPool.Exec(ctx, `
		UPDATE settings SET document = '{}'::jsonb, version = 1, updated_at = now()
		WHERE id = 'main_settings'
	`)
	require.NoError(t, err)
}

func createTestRaffle(t *testing.T) *model.Raffle {
	t.Helper()
	repo := repository.NewRaffleRepository(testPool)
	raffle, err := repo.Create(context.Background(), &model.Raffle{
		RaffleID:    uuid.New(),
		Slug:        "test-" + uuid.NewString()[:8],
		Title:       "Test Raffle",
		Images:      []string{},
		Price:       50,
		TicketCount: 100,
		Status:      model.RaffleStatusActive,
	})
	require.NoError(t, err)
	return raffle
}

// createOrderWithTickets mirrors what the order service does in one
// transaction: upsert the customer, insert the order and reserve its numbers.
func createOrderWithTickets(t *testing.T, raffle *model.Raffle, tickets []int) (*model.Order, error) {
	t.Helper()
	ctx := context.Background()

	orderRepo := repository.NewOrderRepository(testPool)
	userRepo := repository.NewUserRepository(testPool)
	reservationRepo := repository.NewReservationRepository(testPool)

	tx, err := testPool.BeginTx(ctx, pgx.TxOptions{})
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	customer := model.Customer{Name: "Ana", Phone: "5512345678"}
	user, err := userRepo.UpsertByPhone(ctx, tx, &model.User{Name: customer.Name, Phone: customer.Phone})
	require.NoError(t, err)

	order, err := orderRepo.Create(ctx, tx, &model.Order{
		Folio:       "LS-TEST-" + uuid.NewString()[:8],
		RaffleID:    raffle.ID,
		UserID:      user.ID,
		Customer:    customer,
		Tickets:     tickets,
		TotalAmount: raffle.Price * float64(len(tickets)),
		Status:      model.OrderStatusPending,
		ExpiresAt:   time.Now().UTC().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	if err := reservationRepo.Reserve(ctx, tx, raffle.ID, order.ID, tickets); err != nil {
		return nil, err
	}

	require.NoError(t, tx.Commit(ctx))
	return order, nil
}

func releaseOrder(t *testing.T, orderID int) []int {
	t.Helper()
	ctx := context.Background()
	reservationRepo := repository.NewReservationRepository(testPool)

	tx, err := testPool.BeginTx(ctx, pgx.TxOptions{})
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	released, err := reservationRepo.ReleaseByOrder(ctx, tx, orderID)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	return released
}

func TestReservationBlocksOverlappingOrder(t *testing.T) {
	resetTables(t)
	raffle := createTestRaffle(t)
	reservationRepo := repository.NewReservationRepository(testPool)

	first, err := createOrderWithTickets(t, raffle, []int{5, 10, 15})
	require.NoError(t, err)

	occupied, err := reservationRepo.Occupied(context.Background(), raffle.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 15}, occupied)

	// Overlaps on 10; the whole order must fail, including the free number 20.
	_, err = createOrderWithTickets(t, raffle, []int{10, 20})
	assert.ErrorIs(t, err, apperrors.ErrTicketsUnavailable)

	occupied, err = reservationRepo.Occupied(context.Background(), raffle.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10, 15}, occupied, "a failed order must not leave partial reservations")

	// Releasing the first order frees its numbers for the retry.
	released := releaseOrder(t, first.ID)
	assert.ElementsMatch(t, []int{5, 10, 15}, released)

	_, err = createOrderWithTickets(t, raffle, []int{10, 20})
	require.NoError(t, err)

	occupied, err = reservationRepo.Occupied(context.Background(), raffle.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, occupied)
}

func TestConcurrentReservationsExactlyOneWins(t *testing.T) {
	resetTables(t)
	raffle := createTestRaffle(t)

	const workers = 2
	results := make([]error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = createOrderWithTickets(t, raffle, []int{7})
		}(i)
	}
	wg.Wait()

	successes := 0
	conflicts := 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, apperrors.ErrTicketsUnavailable):
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}

func TestOwnerOrderID(t *testing.T) {
	resetTables(t)
	raffle := createTestRaffle(t)
	reservationRepo := repository.NewReservationRepository(testPool)

	order, err := createOrderWithTickets(t, raffle, []int{42})
	require.NoError(t, err)

	ownerID, err := reservationRepo.OwnerOrderID(context.Background(), raffle.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, order.ID, ownerID)

	_, err = reservationRepo.OwnerOrderID(context.Background(), raffle.ID, 43)
	assert.ErrorIs(t, err, apperrors.ErrTicketsUnavailable)
}

func TestSettingsVersioning(t *testing.T) {
	resetTables(t)
	repo := repository.NewSettingsRepository(testPool)
	ctx := context.Background()

	initial, err := repo.Get(ctx)
	require.NoError(t, err)

	docA := json.RawMessage(`{"site_name": "Lucky Snap"}`)
	updated, err := repo.Update(ctx, docA, nil)
	require.NoError(t, err)
	assert.Equal(t, initial.Version+1, updated.Version)

	// Writing the identical document again must not advance the version.
	same, err := repo.Update(ctx, docA, nil)
	require.NoError(t, err)
	assert.Equal(t, updated.Version, same.Version)

	// A stale expected version is rejected.
	docB := json.RawMessage(`{"site_name": "Lucky Snap 2"}`)
	stale := updated.Version - 1
	_, err = repo.Update(ctx, docB, &stale)
	assert.ErrorIs(t, err, apperrors.ErrVersionConflict)

	// The matching version goes through.
	current := updated.Version
	final, err := repo.Update(ctx, docB, &current)
	require.NoError(t, err)
	assert.Equal(t, current+1, final.Version)
}

func TestUserUpsertByPhone(t *testing.T) {
	resetTables(t)
	userRepo := repository.NewUserRepository(testPool)
	ctx := context.Background()

	tx, err := testPool.BeginTx(ctx, pgx.TxOptions{})
	require.NoError(t, err)
	first, err := userRepo.UpsertByPhone(ctx, tx, &model.User{Name: "Ana", Phone: "5512345678"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	tx, err = testPool.BeginTx(ctx, pgx.TxOptions{})
	require.NoError(t, err)
	second, err := userRepo.UpsertByPhone(ctx, tx, &model.User{Name: "Ana Maria", Phone: "5512345678"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	assert.Equal(t, first.ID, second.ID, "same phone must resolve to the same user")
	assert.Equal(t, "Ana Maria", second.Name)
}
