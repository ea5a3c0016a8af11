package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Youhab1/cloud-finalproject/pkg/circuitbreaker"
	"github.com/Youhab1/cloud-finalproject/user-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	collection *mongo.Collection
	breaker    *circuitbreaker.Breaker
}

// NewMongoRepository stores users in the "users" collection of db.
func NewMongoRepository(db *mongo.Database, breaker *circuitbreaker.Breaker) *MongoRepository {
	return &MongoRepository{
		collection: db.Collection("users"),
		breaker:    breaker,
	}
}

func (m *MongoRepository) FindByUsername(ctx context.Context, username string) (domain.UserLookup, error) {
	var user domain.User
	err := m.breaker.Do(func() error {
		return m.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.UserLookup{}, nil
	}
	if err != nil {
		return domain.UserLookup{}, fmt.Errorf("failed to find user: %w", err)
	}
	return domain.UserLookup{User: user, Found: true}, nil
}

func (m *MongoRepository) Create(ctx context.Context, user domain.User) error {
	err := m.breaker.Do(func() error {
		_, err := m.collection.InsertOne(ctx, user)
		return err
	})
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// CreateIndexes enforces unique usernames.
func (m *MongoRepository) CreateIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
