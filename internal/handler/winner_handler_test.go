package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/luckysnap/backend/internal/model"
	servicemocks "github.com/luckysnap/backend/internal/service/mocks"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupWinnerHandler(t *testing.T) (*gin.Engine, *servicemocks.MockWinnerService) {
	svc := servicemocks.NewMockWinnerService(t)
	r, _, admin := newTestRouter()
	NewWinnerHandler(svc).RegisterRoutes(admin)
	return r, svc
}

func TestDrawEndpoint(t *testing.T) {
	r, svc := setupWinnerHandler(t)

	candidate := &model.DrawCandidate{
		RaffleID:     1,
		TicketNumber: 42,
		OrderID:      7,
		Folio:        "LS-ABC-1234",
		Customer:     model.Customer{Name: "Ana", Phone: "5512345678"},
	}
	svc.EXPECT().Draw(mock.Anything, 1).Return(candidate, nil).Once()

	w := performRequest(t, r, http.MethodPost, "/api/admin/raffles/1/draw", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var got model.DrawCandidate
	decodeBody(t, w, &got)
	assert.Equal(t, 42, got.TicketNumber)
	assert.Equal(t, "LS-ABC-1234", got.Folio)
}

func TestDrawEndpointRaffleNotFinished(t *testing.T) {
	r, svc := setupWinnerHandler(t)

	svc.EXPECT().Draw(mock.Anything, 1).
		Return(nil, apperrors.ErrRaffleNotFinished).Once()

	w := performRequest(t, r, http.MethodPost, "/api/admin/raffles/1/draw", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDrawEndpointNoTickets(t *testing.T) {
	r, svc := setupWinnerHandler(t)

	svc.EXPECT().Draw(mock.Anything, 1).
		Return(nil, apperrors.ErrNoTicketsOccupied).Once()

	w := performRequest(t, r, http.MethodPost, "/api/admin/raffles/1/draw", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmWinnerEndpoint(t *testing.T) {
	r, svc := setupWinnerHandler(t)

	winner := &model.Winner{ID: 1, RaffleID: 1, TicketNumber: 42}
	svc.EXPECT().ConfirmWinner(mock.Anything, 1, 42).Return(winner, nil).Once()

	w := performRequest(t, r, http.MethodPost, "/api/admin/raffles/1/winner", map[string]interface{}{
		"ticket_number": 42,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestConfirmWinnerEndpointMissingTicket(t *testing.T) {
	r, _ := setupWinnerHandler(t)

	w := performRequest(t, r, http.MethodPost, "/api/admin/raffles/1/winner", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteWinnerEndpoint(t *testing.T) {
	r, svc := setupWinnerHandler(t)

	svc.EXPECT().Delete(mock.Anything, 3).Return(nil).Once()

	w := performRequest(t, r, http.MethodDelete, "/api/admin/winners/3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
