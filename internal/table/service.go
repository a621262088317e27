package table

import (
	"context"
	"fmt"
	"time"

	"cafeteria-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	ListTables(ctx context.Context) ([]*CafeteriaTable, error)
	GetTable(ctx context.Context, id int) (*CafeteriaTable, error)
	GenerateQrCode(ctx context.Context, tableID int) (*QrCode, error)
}

type service struct {
	repo   Repository
	appURL string
}

func NewService(repo Repository, appURL string) Service {
	return &service{repo: repo, appURL: appURL}
}

func (s *service) ListTables(ctx context.Context) ([]*CafeteriaTable, error) {
	tables, err := s.repo.ListTables(ctx)
	if err != nil {
		return nil, err
	}
	if tables == nil {
		tables = []*CafeteriaTable{}
	}
	return tables, nil
}

func (s *service) GetTable(ctx context.Context, id int) (*CafeteriaTable, error) {
	return s.repo.GetTable(ctx, id)
}

// GenerateQrCode writes the menu deep link a printed table QR encodes.
func (s *service) GenerateQrCode(ctx context.Context, tableID int) (*QrCode, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GenerateQrCode"),
		zap.Int("table_id", tableID),
	)

	t, err := s.repo.GetTable(ctx, tableID)
	if err != nil {
		log.Warn("failed to load table", zap.Error(err))
		return nil, err
	}

	qr := &QrCode{
		TableID:     t.ID,
		Data:        fmt.Sprintf("%s/menu?table=%d", s.appURL, t.TableNumber),
		GeneratedAt: time.Now(),
	}

	if err := s.repo.UpsertQrCode(ctx, qr); err != nil {
		log.Error("failed to upsert qr code", zap.Error(err))
		return nil, err
	}

	log.Info("qr code generated", zap.String("data", qr.Data))
	return qr, nil
}
