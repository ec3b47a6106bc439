package repositories

import "katalog/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// FindAndCount returns one page of products in the store's natural order
	// together with the total number of products.
	FindAndCount(offset, limit int) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	// Save writes back every field of an existing product.
	Save(product *models.Product) error
	// Delete removes a product and reports how many rows were affected.
	Delete(id uint) (int64, error)
}
