package repositories

import (
	"context"
	"errors"
	"fmt"

	"rocketshoes-cart/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Stock Oracle backed by the catalog database
type mongoStockOracle struct {
	products *mongo.Collection
	stock    *mongo.Collection
}

func NewMongoStockOracle(db *mongo.Database) StockOracle {
	return &mongoStockOracle{
		products: db.Collection("products"),
		stock:    db.Collection("stock"),
	}
}

func (r *mongoStockOracle) GetStock(ctx context.Context, productID int64) (*models.Stock, error) {
	var stock models.Stock
	err := r.stock.FindOne(ctx, bson.M{"_id": productID}).Decode(&stock)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("stock %d: %w", productID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *mongoStockOracle) GetProduct(ctx context.Context, productID int64) (*models.Product, error) {
	var product models.Product
	err := r.products.FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *mongoStockOracle) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}
