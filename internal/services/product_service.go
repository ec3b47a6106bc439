package services

import (
	"encoding/json"
	"fmt"

	"katalog/internal/models"
	"katalog/internal/repositories"

	log "github.com/sirupsen/logrus"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// EventPublisher publishes catalog lifecycle events. Satisfied by
// *rabbitmq.Client; may be nil when no broker is configured.
type EventPublisher interface {
	Publish(body []byte) error
}

// ProductPage is the envelope returned by GetAllProducts.
type ProductPage struct {
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int64            `json:"totalPages"`
	Products   []models.Product `json:"products"`
}

// ProductUpdate carries a partial update. Nil fields keep the stored value.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
}

// ProductService handles business logic related to catalog products.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewProductService creates a new ProductService. events may be nil, in which
// case lifecycle events are skipped.
func NewProductService(repo repositories.ProductRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
	}
}

// CreateProduct persists a new product and returns it with its assigned ID.
func (s *ProductService) CreateProduct(name string, price float64, description string) (*models.Product, error) {
	product := &models.Product{
		Name:        name,
		Price:       price,
		Description: description,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	s.publishEvent("product.created", product)
	return product, nil
}

// GetAllProducts returns one page of products using offset pagination:
// skip = (page-1)*limit. Values below 1 fall back to the defaults. totalPages
// is ceil(total/limit).
func (s *ProductService) GetAllProducts(page, limit int) (*ProductPage, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	products, total, err := s.repo.FindAndCount((page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + int64(limit) - 1) / int64(limit),
		Products:   products,
	}, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// UpdateProduct merges the provided fields onto the stored record and saves
// it. Fields absent from the update keep their prior values. Returns
// repositories.ErrNotFound (wrapped) if the product does not exist.
func (s *ProductService) UpdateProduct(id uint, update ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Description != nil {
		product.Description = *update.Description
	}

	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	s.publishEvent("product.updated", product)
	return product, nil
}

// DeleteProduct removes a product. Returns repositories.ErrNotFound if no
// record was affected.
func (s *ProductService) DeleteProduct(id uint) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("product with ID %d: %w", id, repositories.ErrNotFound)
	}
	s.publishEvent("product.deleted", &models.Product{ID: id})
	return nil
}

// publishEvent emits a lifecycle event to the broker, best effort. A publish
// failure must never fail the request that caused it.
func (s *ProductService) publishEvent(event string, product *models.Product) {
	if s.events == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":   event,
		"product": product,
	})
	if err != nil {
		log.Errorf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := s.events.Publish(body); err != nil {
		log.Warnf("Failed to publish %s event for product %d: %v", event, product.ID, err)
	}
}
