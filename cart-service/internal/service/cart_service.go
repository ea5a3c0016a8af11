package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Youhab1/cloud-finalproject/cart-service/internal/cache"
	"github.com/Youhab1/cloud-finalproject/cart-service/internal/domain"
	"github.com/Youhab1/cloud-finalproject/cart-service/internal/ledger"
	"github.com/Youhab1/cloud-finalproject/cart-service/internal/ordernum"
	"github.com/Youhab1/cloud-finalproject/cart-service/internal/repository"
	"github.com/Youhab1/cloud-finalproject/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	catalogFlightKey   = "catalog"
	catalogLoadTimeout = 10 * time.Second
)

type CartService struct {
	ledger   *ledger.Ledger
	orders   *ordernum.Generator
	products repository.ProductReader
	cache    cache.CatalogCache // optional
	sfg      singleflight.Group // Prevents cache stampede
}

func NewCartService(l *ledger.Ledger, orders *ordernum.Generator, products repository.ProductReader, c cache.CatalogCache) *CartService {
	return &CartService{
		ledger:   l,
		orders:   orders,
		products: products,
		cache:    c,
	}
}

// AddItem appends a line to the ledger. A zero price counts as missing.
func (s *CartService) AddItem(ctx context.Context, item domain.CartItem) error {
	if item.ProductID == "" || item.ProductName == "" || item.Price == 0 {
		return fmt.Errorf("%w: productId, productName and price are required", ErrInvalidRequest)
	}

	s.ledger.Add(item)
	logger.FromContext(ctx).Debug("item added to cart", zap.String("product_id", string(item.ProductID)))
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, productID domain.ProductID) (domain.RemoveOutcome, error) {
	if productID == "" {
		return domain.RemoveNotFound, fmt.Errorf("%w: productId is required", ErrInvalidRequest)
	}

	if !s.ledger.Remove(productID) {
		return domain.RemoveNotFound, nil
	}
	logger.FromContext(ctx).Debug("item removed from cart", zap.String("product_id", string(productID)))
	return domain.RemoveRemoved, nil
}

func (s *CartService) ListItems(context.Context) domain.CartSummary {
	return s.ledger.Snapshot()
}

// Checkout prices the items the caller sent. It neither reads nor clears the ledger.
func (s *CartService) Checkout(ctx context.Context, items []domain.CartItem) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	order := domain.Order{
		Items:         items,
		TotalPrice:    domain.TotalPrice(items),
		PaymentMethod: domain.PaymentCashOnDelivery,
		OrderNumber:   s.orders.Next(),
	}
	logger.FromContext(ctx).Info("checkout processed",
		zap.Int("order_number", order.OrderNumber),
		zap.Int("items", len(items)),
		zap.Float64("total", order.TotalPrice))
	return order, nil
}

// Catalog lists every product reduced to name, price and photo. Concurrent
// callers share one load, which runs detached from any single request so a
// caller that goes away does not fail the others.
func (s *CartService) Catalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	if s.cache == nil {
		return s.loadCatalog(ctx)
	}

	flight := s.sfg.DoChan(catalogFlightKey, func() (interface{}, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), catalogLoadTimeout)
		defer cancel()

		entries, err := s.cache.Get(flightCtx)
		if err == nil {
			return entries, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.FromContext(ctx).Warn("cache get error", zap.Error(err)) // log cache error but continue
		}

		entries, err = s.loadCatalog(flightCtx)
		if err != nil {
			return nil, err
		}

		if errSet := s.cache.Set(flightCtx, entries); errSet != nil {
			logger.FromContext(ctx).Warn("cache set error", zap.Error(errSet))
		}
		return entries, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.CatalogEntry), nil
	}
}

func (s *CartService) loadCatalog(ctx context.Context) ([]domain.CatalogEntry, error) {
	products, err := s.products.AllProducts(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("error fetching products", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return domain.ProjectCatalog(products), nil
}
