package cache

import (
	"context"
	"errors"

	"github.com/Youhab1/cloud-finalproject/cart-service/internal/domain"
)

// CatalogCache holds the projected product catalog between store reads.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.CatalogEntry, error)
	Set(ctx context.Context, entries []domain.CatalogEntry) error
}

var ErrCacheMiss = errors.New("cache miss")
