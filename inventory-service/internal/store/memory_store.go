package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/domain"
)

// MemoryStore holds the catalog in process memory. It answers the same
// queries as the Mongo repository and is used for local runs and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemoryStore(products ...domain.Product) *MemoryStore {
	s := &MemoryStore{}
	s.Load(products)
	return s
}

// Load replaces the catalog.
func (s *MemoryStore) Load(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]domain.Product(nil), products...)
}

// LoadFile replaces the catalog with the JSON array stored at path.
func (s *MemoryStore) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	s.Load(products)
	return nil
}

func (s *MemoryStore) FindProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.collect(ctx, filter.Matches)
}

func (s *MemoryStore) SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	return s.collect(ctx, func(p domain.Product) bool {
		return domain.MatchesKeyword(p, keyword)
	})
}

// FindByID returns the first product carrying id, in insertion order.
func (s *MemoryStore) FindByID(ctx context.Context, id int64) (domain.ProductLookup, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProductLookup{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return domain.ProductLookup{Product: p, Found: true}, nil
		}
	}
	return domain.ProductLookup{}, nil
}

func (s *MemoryStore) collect(ctx context.Context, match func(domain.Product) bool) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if match(p) {
			result = append(result, p)
		}
	}
	return result, nil
}
