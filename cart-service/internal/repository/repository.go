package repository

import (
	"context"

	"github.com/Youhab1/cloud-finalproject/cart-service/internal/domain"
)

// ProductReader defines the catalog read the cart needs from the inventory database.
// Consumers define this interface, not the MongoDB implementation
type ProductReader interface {
	AllProducts(ctx context.Context) ([]domain.Product, error)
}
