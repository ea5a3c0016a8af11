package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/domain"
	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/repository"
	"github.com/Youhab1/cloud-finalproject/pkg/logger"
	"go.uber.org/zap"
)

type InventoryService struct {
	repo repository.ProductRepository
}

func NewInventoryService(repo repository.ProductRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// NewProductFilter builds a filter from raw query values. Empty strings mean
// the field is absent.
func NewProductFilter(category, productType, minPrice, maxPrice string) (domain.ProductFilter, error) {
	filter := domain.ProductFilter{
		Category: category,
		Type:     productType,
	}

	var err error
	if filter.MinPrice, err = parsePrice("minPrice", minPrice); err != nil {
		return domain.ProductFilter{}, err
	}
	if filter.MaxPrice, err = parsePrice("maxPrice", maxPrice); err != nil {
		return domain.ProductFilter{}, err
	}
	return filter, nil
}

func (s *InventoryService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.repo.FindProducts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("failed to retrieve products", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return products, nil
}

func (s *InventoryService) SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword", ErrMissingParameter)
	}

	products, err := s.repo.SearchProducts(ctx, keyword)
	if err != nil {
		logger.FromContext(ctx).Error("failed to search products", zap.String("keyword", keyword), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return products, nil
}

// GetProductDetails looks a product up by its business id. A product that
// does not exist yields a lookup with Found set to false and no error.
func (s *InventoryService) GetProductDetails(ctx context.Context, rawID string) (domain.ProductLookup, error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return domain.ProductLookup{}, fmt.Errorf("%w: id", ErrMissingParameter)
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return domain.ProductLookup{}, fmt.Errorf("%w: product id %q is not a number", ErrInvalidRequest, rawID)
	}

	lookup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to retrieve product details", zap.Int64("id", id), zap.Error(err))
		return domain.ProductLookup{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return lookup, nil
}

func parsePrice(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %s must be a number", ErrInvalidRequest, name)
	}
	return &v, nil
}
