package repository

import (
	"regexp"

	"github.com/Youhab1/cloud-finalproject/inventory-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// filterQuery translates a ProductFilter into a Mongo filter document.
// Top-level keys are ANDed by Mongo; price bounds share one sub-document.
func filterQuery(f domain.ProductFilter) bson.M {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Type != "" {
		query["type"] = f.Type
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}
	return query
}

// searchQuery matches keyword as a literal, case-insensitive substring of
// name or category.
func searchQuery(keyword string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	return bson.M{
		"$or": bson.A{
			bson.M{"name": pattern},
			bson.M{"category": pattern},
		},
	}
}

func idQuery(id int64) bson.M {
	return bson.M{"id": id}
}
