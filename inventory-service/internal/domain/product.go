package domain

import "strings"

// Product is the catalog record seeded into the inventory database.
type Product struct {
	ID       int64   `bson:"id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Category string  `bson:"category" json:"category"`
	Type     string  `bson:"type" json:"type"`
	Price    float64 `bson:"price" json:"price"`
	Details  string  `bson:"details" json:"details"`
	Metal    string  `bson:"metal" json:"metal"`
	Grams    string  `bson:"grams" json:"grams"`
	Photo    string  `bson:"photo,omitempty" json:"photo,omitempty"`
}

// ProductFilter narrows a product listing. Nil or empty fields are ignored;
// every field that is set must match. Price bounds are inclusive.
type ProductFilter struct {
	Category string
	Type     string
	MinPrice *float64
	MaxPrice *float64
}

func (f ProductFilter) IsEmpty() bool {
	return f.Category == "" && f.Type == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// Matches reports whether p satisfies the filter.
func (f ProductFilter) Matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

// MatchesKeyword reports a case-insensitive substring hit on name or category.
func MatchesKeyword(p Product, keyword string) bool {
	k := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(p.Name), k) ||
		strings.Contains(strings.ToLower(p.Category), k)
}

// ProductLookup is the outcome of a lookup by business id. Found is false
// when no product carries the id; that is not an error.
type ProductLookup struct {
	Product Product
	Found   bool
}
