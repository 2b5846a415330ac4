package inventory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
)

// Service defines inventory ledger business logic.
type Service interface {
	RecordMovement(ctx context.Context, req RecordMovementRequest) (*Movement, error)
	DeleteMovement(ctx context.Context, id uuid.UUID) error
	LatestMovements(ctx context.Context, limit int) ([]*MovementDetail, error)
	ProductStock(ctx context.Context, productID uuid.UUID) ([]*CurrentStock, error)
}

// RecordMovementRequest holds the data for a stock increase.
type RecordMovementRequest struct {
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
	TotalPrice float64   `json:"total_price"`
	UserID     uuid.UUID `json:"-"`
}

const defaultFeedLimit = 100

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new inventory service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) RecordMovement(ctx context.Context, req RecordMovementRequest) (*Movement, error) {
	if req.Quantity <= 0 || req.TotalPrice <= 0 {
		return nil, apperr.Validation("Miktar ve fiyat 0'dan büyük olmalıdır")
	}
	if req.ProductID == uuid.Nil || strings.TrimSpace(req.Unit) == "" {
		return nil, apperr.Validation("Lütfen tüm alanları doğru şekilde doldurun")
	}

	userID := req.UserID
	m := &Movement{
		ID:             uuid.New(),
		ProductID:      req.ProductID,
		QuantityChange: req.Quantity,
		Unit:           strings.TrimSpace(req.Unit),
		TotalPrice:     req.TotalPrice,
		MovementType:   MovementTypeIncrease,
		UserID:         &userID,
	}

	if err := s.repo.RecordMovement(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("movement recorded",
		zap.String("movement_id", m.ID.String()),
		zap.String("product_id", m.ProductID.String()),
		zap.Float64("quantity", m.QuantityChange),
		zap.String("unit", m.Unit),
		zap.Float64("total_price", m.TotalPrice))
	return m, nil
}

func (s *service) DeleteMovement(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Validation("Geçersiz hareket ID'si")
	}
	if err := s.repo.DeleteMovement(ctx, id); err != nil {
		return err
	}
	s.logger.Info("movement deleted", zap.String("movement_id", id.String()))
	return nil
}

func (s *service) LatestMovements(ctx context.Context, limit int) ([]*MovementDetail, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return s.repo.LatestMovements(ctx, limit)
}

func (s *service) ProductStock(ctx context.Context, productID uuid.UUID) ([]*CurrentStock, error) {
	return s.repo.StockForProduct(ctx, productID)
}
