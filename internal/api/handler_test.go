package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cafeteria-be/internal/order"
	"cafeteria-be/internal/payment"
	"cafeteria-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) CreateOrder(ctx context.Context, params order.CreateOrderParams) (*order.Order, error) {
	args := m.Called(ctx, params)
	var o *order.Order
	if args.Get(0) != nil {
		o = args.Get(0).(*order.Order)
	}
	return o, args.Error(1)
}

func (m *mockOrderService) GetOrder(ctx context.Context, orderID int) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	var o *order.Order
	if args.Get(0) != nil {
		o = args.Get(0).(*order.Order)
	}
	return o, args.Error(1)
}

func (m *mockOrderService) ListOrders(ctx context.Context, filter order.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	var orders []*order.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]*order.Order)
	}
	return orders, args.Error(1)
}

func (m *mockOrderService) UpdateStatus(ctx context.Context, orderID int, status order.OrderStatus) (*order.Order, error) {
	args := m.Called(ctx, orderID, status)
	var o *order.Order
	if args.Get(0) != nil {
		o = args.Get(0).(*order.Order)
	}
	return o, args.Error(1)
}

type mockPaymentService struct {
	mock.Mock
}

func (m *mockPaymentService) RecordPayment(ctx context.Context, params payment.RecordPaymentParams) (*payment.Payment, error) {
	args := m.Called(ctx, params)
	var p *payment.Payment
	if args.Get(0) != nil {
		p = args.Get(0).(*payment.Payment)
	}
	return p, args.Error(1)
}

func (m *mockPaymentService) GetPayment(ctx context.Context, paymentID int) (*payment.Payment, *payment.OrderSummary, error) {
	args := m.Called(ctx, paymentID)
	var p *payment.Payment
	var o *payment.OrderSummary
	if args.Get(0) != nil {
		p = args.Get(0).(*payment.Payment)
	}
	if args.Get(1) != nil {
		o = args.Get(1).(*payment.OrderSummary)
	}
	return p, o, args.Error(2)
}

func asStaff(r *http.Request) *http.Request {
	return r.WithContext(utils.SetUserContext(r.Context(), 7, "staff@cafeteria.local", "Staff"))
}

func asCustomer(r *http.Request) *http.Request {
	return r.WithContext(utils.SetUserContext(r.Context(), 5, "guest@cafeteria.local", "Customer"))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestOrderCreateHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := new(mockOrderService)
		h := NewOrderHandler(svc)

		svc.On("CreateOrder", mock.Anything, order.CreateOrderParams{
			TableID: 3,
			Items: []order.OrderItemInput{
				{ItemID: 7, Quantity: 2},
			},
		}).Return(&order.Order{ID: 42, TableID: 3, Status: order.StatusPending}, nil)

		body := `{"table_id": 3, "items": [{"item_id": 7, "quantity": 2}]}`
		r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, r)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var got order.Order
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, 42, got.ID)
		assert.Equal(t, order.StatusPending, got.Status)
	})

	t.Run("UnknownTableIsValidationFailure", func(t *testing.T) {
		svc := new(mockOrderService)
		h := NewOrderHandler(svc)

		svc.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, order.ErrTableNotFound)

		body := `{"table_id": 999, "items": [{"item_id": 7, "quantity": 2}]}`
		r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, r)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "validation_failed", decodeError(t, rec).Error)
	})

	t.Run("UnknownItemIsValidationFailure", func(t *testing.T) {
		svc := new(mockOrderService)
		h := NewOrderHandler(svc)

		svc.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, order.ErrMenuItemNotFound)

		body := `{"table_id": 3, "items": [{"item_id": 999, "quantity": 2}]}`
		r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Create(rec, r)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		svc := new(mockOrderService)
		h := NewOrderHandler(svc)

		r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		h.Create(rec, r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})
}

func TestOrderGetHandler(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		svc := new(mockOrderService)
		h := NewOrderHandler(svc)

		svc.On("GetOrder", mock.Anything, 999).Return(nil, order.ErrOrderNotFound)

		r := httptest.NewRequest(http.MethodGet, "/api/orders/999", nil)
		r.SetPathValue("id", "999")
		rec := httptest.NewRecorder()

		h.Get(rec, r)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", decodeError(t, rec).Error)
	})

	t.Run("NonNumericID", func(t *testing.T) {
		svc := new(mockOrderService)
		h := NewOrderHandler(svc)

		r := httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil)
		r.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()

		h.Get(rec, r)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		svc.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
	})
}

func TestOrderUpdateStatusHandler(t *testing.T) {
	t.Run("OutsideEnum", func(t *testing.T) {
		svc := new(mockOrderService)
		h := NewOrderHandler(svc)

		svc.On("UpdateStatus", mock.Anything, 17, order.OrderStatus("Cancelled")).
			Return(nil, order.ErrInvalidStatus)

		r := httptest.NewRequest(http.MethodPut, "/api/orders/17", strings.NewReader(`{"order_status": "Cancelled"}`))
		r.SetPathValue("id", "17")
		rec := httptest.NewRecorder()

		h.UpdateStatus(rec, r)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Updated", func(t *testing.T) {
		svc := new(mockOrderService)
		h := NewOrderHandler(svc)

		svc.On("UpdateStatus", mock.Anything, 17, order.StatusServed).
			Return(&order.Order{ID: 17, Status: order.StatusServed}, nil)

		r := httptest.NewRequest(http.MethodPut, "/api/orders/17", strings.NewReader(`{"order_status": "Served"}`))
		r.SetPathValue("id", "17")
		rec := httptest.NewRecorder()

		h.UpdateStatus(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPaymentRecordHandler(t *testing.T) {
	t.Run("MissingOrderIsValidationFailure", func(t *testing.T) {
		svc := new(mockPaymentService)
		h := NewPaymentHandler(svc)

		svc.On("RecordPayment", mock.Anything, mock.Anything).Return(nil, payment.ErrOrderNotFound)

		body := `{"order_id": 999, "amount": 10.0, "payment_method": "cash"}`
		r := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Record(rec, r)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Created", func(t *testing.T) {
		svc := new(mockPaymentService)
		h := NewPaymentHandler(svc)

		svc.On("RecordPayment", mock.Anything, payment.RecordPaymentParams{
			OrderID: 42,
			Amount:  15.50,
			Method:  "cash",
		}).Return(&payment.Payment{ID: 101, OrderID: 42, Amount: 15.50, Status: payment.StatusPaid}, nil)

		body := `{"order_id": 42, "amount": 15.5, "payment_method": "cash"}`
		r := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.Record(rec, r)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var got payment.Payment
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, payment.StatusPaid, got.Status)
	})
}

func TestRequireRoles(t *testing.T) {
	ok := func(w http.ResponseWriter, r *http.Request) {
		WriteJSONResponse(w, http.StatusOK, map[string]string{"ok": "true"})
	}
	gated := RequireRoles(ok, "Staff", "Admin")

	t.Run("AnonymousGets401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		gated(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "unauthorized", decodeError(t, rec).Error)
	})

	t.Run("CustomerGets403", func(t *testing.T) {
		rec := httptest.NewRecorder()
		gated(rec, asCustomer(httptest.NewRequest(http.MethodGet, "/api/orders", nil)))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "forbidden", decodeError(t, rec).Error)
	})

	t.Run("StaffPasses", func(t *testing.T) {
		rec := httptest.NewRecorder()
		gated(rec, asStaff(httptest.NewRequest(http.MethodGet, "/api/orders", nil)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouterRouting(t *testing.T) {
	orderSvc := new(mockOrderService)
	paymentSvc := new(mockPaymentService)

	h := Handlers{
		Auth:     NewAuthHandler(nil),
		Order:    NewOrderHandler(orderSvc),
		Payment:  NewPaymentHandler(paymentSvc),
		Menu:     NewMenuHandler(nil),
		Category: NewCategoryHandler(nil),
		Table:    NewTableHandler(nil),
		Admin:    NewAdminHandler(nil, nil, nil),
	}
	router := NewRouter(h)

	t.Run("PublicOrderPoll", func(t *testing.T) {
		orderSvc.On("GetOrder", mock.Anything, 42).
			Return(&order.Order{ID: 42, Status: order.StatusPreparing}, nil).Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders/42", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("OrderListIsGated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("StatusFilterReachesService", func(t *testing.T) {
		ready := order.StatusReady
		orderSvc.On("ListOrders", mock.Anything, order.OrderFilter{Status: &ready}).
			Return([]*order.Order{}, nil).Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, asStaff(httptest.NewRequest(http.MethodGet, "/api/orders?status=Ready", nil)))

		assert.Equal(t, http.StatusOK, rec.Code)
		orderSvc.AssertExpectations(t)
	})
}
