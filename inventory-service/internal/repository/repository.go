package repository

import (
	"context"

	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/domain"
)

// ProductRepository reads the product catalog. Implementations never write products.
type ProductRepository interface {
	FindProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error)
	FindByID(ctx context.Context, id int64) (domain.ProductLookup, error)
}
