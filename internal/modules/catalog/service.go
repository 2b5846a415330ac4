package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	// ListProductsByCategory groups products by department for display.
	ListProductsByCategory(ctx context.Context) (map[string][]*Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// CreateProductRequest holds the data for creating a product.
type CreateProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("Ürün adı boş olamaz")
	}
	if !ValidCategory(req.Category) {
		return nil, apperr.Validation("Geçersiz ürün bölümü")
	}

	p := &Product{
		ID:       uuid.New(),
		Name:     name,
		Category: req.Category,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", p.ID.String()),
		zap.String("name", p.Name),
		zap.String("category", p.Category))
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) ListProductsByCategory(ctx context.Context) (map[string][]*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]*Product)
	for _, p := range products {
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	return grouped, nil
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}
