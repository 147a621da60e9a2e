package products

import "reviewapi/internal/store"

type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Info is the product summary served by GET /api/product/{id}.
type Info struct {
	ProductName     string            `json:"product_name"`
	NumberOfReviews int64             `json:"number_of_reviews"`
	AverageRating   store.NullFloat64 `json:"average_rating" swaggertype:"number"`
}
