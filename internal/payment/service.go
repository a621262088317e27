package payment

import (
	"context"
	"time"

	"cafeteria-be/internal/logger"
	"cafeteria-be/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	RecordPayment(ctx context.Context, params RecordPaymentParams) (*Payment, error)
	GetPayment(ctx context.Context, paymentID int) (*Payment, *OrderSummary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// RecordPayment writes a settlement row for an existing order. There is no
// external gateway; the payment is finalized in the same write.
func (s *service) RecordPayment(ctx context.Context, params RecordPaymentParams) (*Payment, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RecordPayment"),
		zap.Int("order_id", params.OrderID),
		zap.Float64("amount", params.Amount),
	)

	if params.Amount < 0 {
		log.Warn("negative amount rejected")
		return nil, ErrInvalidAmount
	}
	if params.Method == "" {
		log.Warn("missing payment method")
		return nil, ErrMethodRequired
	}

	exists, err := s.repo.OrderExists(ctx, params.OrderID)
	if err != nil {
		log.Error("failed to look up order", zap.Error(err))
		return nil, err
	}
	if !exists {
		log.Warn("order not found")
		return nil, ErrOrderNotFound
	}

	p := &Payment{
		OrderID:     params.OrderID,
		Amount:      params.Amount,
		Method:      params.Method,
		Status:      StatusPaid,
		PaymentTime: time.Now(),
		Reference:   uuid.New().String(),
	}

	if err := s.repo.SavePayment(ctx, p); err != nil {
		log.Error("failed to save payment", zap.Error(err))
		return nil, err
	}

	// The order keeps its current status; the kitchen advances it separately.

	metrics.PaymentsRecorded.Inc()
	log.Info("payment recorded", zap.Int("payment_id", p.ID), zap.String("reference", p.Reference))

	return p, nil
}

func (s *service) GetPayment(ctx context.Context, paymentID int) (*Payment, *OrderSummary, error) {
	return s.repo.GetPayment(ctx, paymentID)
}
