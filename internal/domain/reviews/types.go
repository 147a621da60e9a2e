package reviews

import "time"

type Review struct {
	ProductID int64     `json:"product_id"`
	Rating    float64   `json:"rating"`
	Date      time.Time `json:"date"`
	Feedback  string    `json:"feedback"`
}
