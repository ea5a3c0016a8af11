package repository

import (
	"context"
	"fmt"

	"github.com/Youhab1/cloud-finalproject/cart-service/internal/domain"
	"github.com/Youhab1/cloud-finalproject/pkg/circuitbreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRepository struct {
	collection *mongo.Collection
	breaker    *circuitbreaker.Breaker
}

func (m mongoRepository) AllProducts(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0)

	opts := options.Find().SetProjection(bson.M{"_id": 0, "name": 1, "price": 1, "photo": 1})
	err := m.breaker.Do(func() error {
		cursor, err := m.collection.Find(ctx, bson.M{}, opts)
		if err != nil {
			return fmt.Errorf("failed to query products: %w", err)
		}
		defer cursor.Close(ctx)

		if err := cursor.All(ctx, &products); err != nil {
			return fmt.Errorf("failed to decode products: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// NewMongoRepository reads the "products" collection of the inventory database.
func NewMongoRepository(db *mongo.Database, breaker *circuitbreaker.Breaker) ProductReader {
	return &mongoRepository{
		collection: db.Collection("products"),
		breaker:    breaker,
	}
}
