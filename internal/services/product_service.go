package services

import (
	"encoding/json"
	"log"

	"github.com/Ishita1406/groceryApp/internal/models"
	"github.com/Ishita1406/groceryApp/internal/repositories"
	"github.com/Ishita1406/groceryApp/pkg/rabbitmq"
)

// Pagination defaults. Missing or unusable page/limit values coerce to these
// rather than erroring.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ProductUpdate carries the fields of a partial product update. Nil fields
// are left untouched on the stored record.
type ProductUpdate struct {
	Name        *string
	Price       *float64
	Category    *string
	Stock       *int
	ImageURL    *string
	Description *string
}

// ProductService handles business logic related to products. When an event
// client is configured, mutations publish catalog change events; event
// delivery is best-effort and never fails the operation.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. mqClient may be nil, which
// disables event publication.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// ListProducts retrieves one page of products matching the filter plus the
// total matching count. Non-positive page/limit coerce to the defaults.
func (s *ProductService) ListProducts(filter repositories.ProductFilter, page, limit int) ([]models.Product, int64, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return s.repo.List(filter, page, limit)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. The repository assigns the id and
// creation time; the stored record is returned through the same pointer.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publishEvent("product.created", product)
	return nil
}

// UpdateProduct applies a partial update to an existing product: only the
// fields set in upd overwrite the stored record. Returns the updated record.
func (s *ProductService) UpdateProduct(id string, upd ProductUpdate) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.Price != nil {
		product.Price = *upd.Price
	}
	if upd.Category != nil {
		product.Category = *upd.Category
	}
	if upd.Stock != nil {
		product.Stock = *upd.Stock
	}
	if upd.ImageURL != nil {
		product.ImageURL = *upd.ImageURL
	}
	if upd.Description != nil {
		product.Description = *upd.Description
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	s.publishEvent("product.updated", product)
	return product, nil
}

// DeleteProduct deletes a product by its ID. Deleting an id that does not
// exist is an error, not a no-op.
func (s *ProductService) DeleteProduct(id string) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("product.deleted", product)
	return nil
}

// publishEvent sends a catalog change event when a broker is configured.
func (s *ProductService) publishEvent(event string, product *models.Product) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event":     event,
		"productId": product.ID,
		"name":      product.Name,
		"category":  product.Category,
		"stock":     product.Stock,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event for product %s: %v", event, product.ID, err)
		return
	}

	if err := s.mqClient.Publish("", rabbitmq.CatalogQueue, body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, product.ID, err)
	}
}
