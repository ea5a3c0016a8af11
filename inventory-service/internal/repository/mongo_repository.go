package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/domain"
	"github.com/Youhab1/cloud-finalproject/pkg/circuitbreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const productsCollection = "products"

type MongoRepository struct {
	collection *mongo.Collection
	breaker    *circuitbreaker.Breaker
}

// NewMongoRepository reads products from the "products" collection. Every
// call issues a single read; breaker may be nil.
func NewMongoRepository(db *mongo.Database, breaker *circuitbreaker.Breaker) *MongoRepository {
	return &MongoRepository{
		collection: db.Collection(productsCollection),
		breaker:    breaker,
	}
}

func (m *MongoRepository) FindProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return m.find(ctx, filterQuery(filter))
}

func (m *MongoRepository) SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	return m.find(ctx, searchQuery(keyword))
}

func (m *MongoRepository) FindByID(ctx context.Context, id int64) (domain.ProductLookup, error) {
	var lookup domain.ProductLookup

	err := m.breaker.Do(func() error {
		var product domain.Product
		err := m.collection.FindOne(ctx, idQuery(id)).Decode(&product)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get product %d: %w", id, err)
		}
		lookup = domain.ProductLookup{Product: product, Found: true}
		return nil
	})
	if err != nil {
		return domain.ProductLookup{}, err
	}
	return lookup, nil
}

func (m *MongoRepository) find(ctx context.Context, query bson.M) ([]domain.Product, error) {
	products := make([]domain.Product, 0)

	err := m.breaker.Do(func() error {
		cursor, err := m.collection.Find(ctx, query)
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

// CreateIndexes adds lookup indexes on the business id and category. Ids are
// not unique in the seeded data, so the id index is not either.
func (m *MongoRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
