package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/luckysnap/backend/internal/model"
	servicemocks "github.com/luckysnap/backend/internal/service/mocks"
	apperrors "github.com/luckysnap/backend/pkg/app_errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupOrderHandler(t *testing.T) (*gin.Engine, *servicemocks.MockOrderService) {
	svc := servicemocks.NewMockOrderService(t)
	r, public, admin := newTestRouter()
	NewOrderHandler(svc).RegisterRoutes(public, admin)
	return r, svc
}

func orderRequestBody(raffleID string, tickets []int) map[string]interface{} {
	return map[string]interface{}{
		"raffle_id": raffleID,
		"customer":  map[string]string{"name": "Ana", "phone": "5512345678"},
		"tickets":   tickets,
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	r, svc := setupOrderHandler(t)

	raffleID := uuid.New().String()
	order := &model.Order{ID: 1, Folio: "LS-ABC-1234", Tickets: []int{5, 10}, Status: model.OrderStatusPending}
	svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(order, nil).Once()

	w := performRequest(t, r, http.MethodPost, "/api/public/orders", orderRequestBody(raffleID, []int{5, 10}))

	assert.Equal(t, http.StatusCreated, w.Code)

	var got model.Order
	decodeBody(t, w, &got)
	assert.Equal(t, "LS-ABC-1234", got.Folio)
}

func TestCreateOrderEndpointTicketsTaken(t *testing.T) {
	r, svc := setupOrderHandler(t)

	svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrTicketsUnavailable).Once()

	w := performRequest(t, r, http.MethodPost, "/api/public/orders", orderRequestBody(uuid.New().String(), []int{10, 20}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateOrderEndpointMissingTickets(t *testing.T) {
	r, _ := setupOrderHandler(t)

	w := performRequest(t, r, http.MethodPost, "/api/public/orders", map[string]interface{}{
		"raffle_id": uuid.New().String(),
		"customer":  map[string]string{"name": "Ana", "phone": "5512345678"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderByFolioEndpoint(t *testing.T) {
	r, svc := setupOrderHandler(t)

	order := &model.Order{ID: 1, Folio: "LS-ABC-1234", Status: model.OrderStatusPending}
	svc.EXPECT().GetOrderByFolio(mock.Anything, "LS-ABC-1234").Return(order, nil).Once()

	w := performRequest(t, r, http.MethodGet, "/api/public/orders/folio/LS-ABC-1234", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetOrderByFolioEndpointNotFound(t *testing.T) {
	r, svc := setupOrderHandler(t)

	svc.EXPECT().GetOrderByFolio(mock.Anything, "LS-NOPE-0000").
		Return(nil, apperrors.ErrOrderNotFound).Once()

	w := performRequest(t, r, http.MethodGet, "/api/public/orders/folio/LS-NOPE-0000", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkPaidEndpoint(t *testing.T) {
	r, svc := setupOrderHandler(t)

	svc.EXPECT().MarkPaid(mock.Anything, 5).Return(nil).Once()

	w := performRequest(t, r, http.MethodPut, "/api/admin/orders/5/paid", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkPaidEndpointInvalidTransition(t *testing.T) {
	r, svc := setupOrderHandler(t)

	svc.EXPECT().MarkPaid(mock.Anything, 5).Return(apperrors.ErrInvalidTransition).Once()

	w := performRequest(t, r, http.MethodPut, "/api/admin/orders/5/paid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMarkPaidEndpointBadID(t *testing.T) {
	r, _ := setupOrderHandler(t)

	w := performRequest(t, r, http.MethodPut, "/api/admin/orders/abc/paid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelOrderEndpoint(t *testing.T) {
	r, svc := setupOrderHandler(t)

	svc.EXPECT().CancelOrder(mock.Anything, 7).Return(nil).Once()

	w := performRequest(t, r, http.MethodPut, "/api/admin/orders/7/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
