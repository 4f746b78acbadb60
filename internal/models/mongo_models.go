package models

// Product model - MongoDB (catalog data served by the stock service)
type Product struct {
	ID    int64   `bson:"_id" json:"id"`
	Title string  `bson:"title" json:"title"`
	Price float64 `bson:"price" json:"price"`
	Image string  `bson:"image" json:"image"`
}

// Stock model - MongoDB (available quantity per product)
type Stock struct {
	ID     int64 `bson:"_id" json:"id"`
	Amount int   `bson:"amount" json:"amount"`
}
