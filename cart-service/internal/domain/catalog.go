package domain

// Product is the part of an inventory record the cart catalog reads.
type Product struct {
	Name  string  `bson:"name"`
	Price float64 `bson:"price"`
	Photo string  `bson:"photo,omitempty"`
}

// CatalogEntry is the reduced product view shown next to the cart.
type CatalogEntry struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Photo string  `json:"photo,omitempty"`
}

func ProjectCatalog(products []Product) []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, CatalogEntry{
			Name:  p.Name,
			Price: p.Price,
			Photo: p.Photo,
		})
	}
	return entries
}
