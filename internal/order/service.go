package order

import (
	"context"

	"cafeteria-be/internal/logger"
	"cafeteria-be/internal/metrics"
	"cafeteria-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error)
	GetOrder(ctx context.Context, orderID int) (*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID int, status OrderStatus) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateOrder validates the request against the referenced table and menu
// items, then persists the order and its detail rows atomically.
func (s *service) CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateOrder"),
		zap.Int("table_id", params.TableID),
		zap.Int("item_count", len(params.Items)),
	)

	log.Info("create order started")

	if len(params.Items) == 0 {
		log.Warn("order without items rejected")
		return nil, ErrEmptyOrder
	}

	for i, item := range params.Items {
		logItem := log.With(
			zap.Int("index", i),
			zap.Int("item_id", item.ItemID),
			zap.Int("quantity", item.Quantity),
		)

		if item.Quantity < 1 {
			logItem.Warn("invalid quantity")
			return nil, ErrInvalidQuantity
		}

		exists, err := s.repo.MenuItemExists(ctx, item.ItemID)
		if err != nil {
			logItem.Error("failed to look up menu item", zap.Error(err))
			return nil, err
		}
		if !exists {
			logItem.Warn("menu item not found")
			return nil, ErrMenuItemNotFound
		}
	}

	exists, err := s.repo.TableExists(ctx, params.TableID)
	if err != nil {
		log.Error("failed to look up table", zap.Error(err))
		return nil, err
	}
	if !exists {
		log.Warn("table not found")
		return nil, ErrTableNotFound
	}

	o := &Order{
		TableID: params.TableID,
		Status:  StatusPending,
	}

	// Anonymous customer placements carry no user association.
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		o.UserID = &userID
	}

	if err := s.repo.CreateOrderTx(ctx, o, params.Items); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	log.Info("order created", zap.Int("order_id", o.ID))

	return o, nil
}

func (s *service) GetOrder(ctx context.Context, orderID int) (*Order, error) {
	return s.repo.GetOrderDetail(ctx, orderID)
}

func (s *service) ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error) {
	orders, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return []*Order{}, nil
	}

	orderIDs := make([]int, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	details, err := s.repo.FetchOrderDetails(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		o.Details = details[o.ID]
	}

	return orders, nil
}

// UpdateStatus replaces the order status with any member of the status enum.
// Moves are not required to follow the Pending-Preparing-Ready-Served sequence;
// the kitchen board may skip ahead or move an order back, and re-setting the
// current status is a no-op that still succeeds.
func (s *service) UpdateStatus(ctx context.Context, orderID int, status OrderStatus) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateStatus"),
		zap.Int("order_id", orderID),
		zap.String("status", string(status)),
	)

	if !status.Valid() {
		log.Warn("status outside enum rejected")
		return nil, ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		log.Error("failed to update order status", zap.Error(err))
		return nil, err
	}

	log.Info("order status updated")

	return s.repo.GetOrderDetail(ctx, orderID)
}
