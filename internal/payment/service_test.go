package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) OrderExists(ctx context.Context, orderID int) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) SavePayment(ctx context.Context, p *Payment) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 101
	}
	return args.Error(0)
}

func (m *MockRepository) GetPayment(ctx context.Context, paymentID int) (*Payment, *OrderSummary, error) {
	args := m.Called(ctx, paymentID)
	var p *Payment
	var o *OrderSummary
	if args.Get(0) != nil {
		p = args.Get(0).(*Payment)
	}
	if args.Get(1) != nil {
		o = args.Get(1).(*OrderSummary)
	}
	return p, o, args.Error(2)
}

func TestRecordPayment_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("OrderExists", ctx, 42).Return(true, nil)
	repo.On("SavePayment", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil)

	before := time.Now()
	p, err := svc.RecordPayment(ctx, RecordPaymentParams{
		OrderID: 42,
		Amount:  15.50,
		Method:  "cash",
	})

	require.NoError(t, err)
	assert.Equal(t, 101, p.ID)
	assert.Equal(t, 42, p.OrderID)
	assert.Equal(t, 15.50, p.Amount)
	assert.Equal(t, "cash", p.Method)
	assert.Equal(t, StatusPaid, p.Status)
	assert.NotEmpty(t, p.Reference)
	assert.False(t, p.PaymentTime.Before(before))
	repo.AssertExpectations(t)
}

func TestRecordPayment_OrderNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("OrderExists", ctx, 999).Return(false, nil)

	_, err := svc.RecordPayment(ctx, RecordPaymentParams{
		OrderID: 999,
		Amount:  10.00,
		Method:  "card",
	})

	assert.ErrorIs(t, err, ErrOrderNotFound)
	repo.AssertNotCalled(t, "SavePayment", mock.Anything, mock.Anything)
}

func TestRecordPayment_NegativeAmount(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	_, err := svc.RecordPayment(context.Background(), RecordPaymentParams{
		OrderID: 42,
		Amount:  -5.00,
		Method:  "cash",
	})

	assert.ErrorIs(t, err, ErrInvalidAmount)
	repo.AssertNotCalled(t, "OrderExists", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SavePayment", mock.Anything, mock.Anything)
}

func TestRecordPayment_MethodRequired(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	_, err := svc.RecordPayment(context.Background(), RecordPaymentParams{
		OrderID: 42,
		Amount:  10.00,
	})

	assert.ErrorIs(t, err, ErrMethodRequired)
	repo.AssertNotCalled(t, "SavePayment", mock.Anything, mock.Anything)
}

func TestRecordPayment_ZeroAmountAllowed(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("OrderExists", ctx, 42).Return(true, nil)
	repo.On("SavePayment", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil)

	p, err := svc.RecordPayment(ctx, RecordPaymentParams{OrderID: 42, Method: "voucher"})

	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Amount)
}

func TestRecordPayment_SaveFailure(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	repo.On("OrderExists", ctx, 42).Return(true, nil)
	repo.On("SavePayment", ctx, mock.AnythingOfType("*payment.Payment")).
		Return(errors.New("db error"))

	_, err := svc.RecordPayment(ctx, RecordPaymentParams{
		OrderID: 42,
		Amount:  10.00,
		Method:  "cash",
	})

	assert.Error(t, err)
}

func TestGetPayment(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)
	ctx := context.Background()

	want := &Payment{ID: 101, OrderID: 42, Amount: 15.50, Status: StatusPaid}
	order := &OrderSummary{ID: 42, TableID: 3, Status: "Served"}
	repo.On("GetPayment", ctx, 101).Return(want, order, nil)

	p, o, err := svc.GetPayment(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, want, p)
	assert.Equal(t, order, o)

	repo.On("GetPayment", ctx, 999).Return(nil, nil, ErrPaymentNotFound)
	_, _, err = svc.GetPayment(ctx, 999)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
