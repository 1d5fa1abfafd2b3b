package services

import (
	"fmt"
	"time"

	"productos/internal/models"
	"productos/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// EventPublisher publishes product change events. rabbitmq.Client satisfies it.
type EventPublisher interface {
	PublishProductEvent(event models.ProductEvent) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewProductService creates a new ProductService. publisher may be nil,
// in which case no events are emitted.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
	}
}

// GetAllProducts retrieves all products, newest first.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new available product.
func (s *ProductService) CreateProduct(name string, price float64) (*models.Product, error) {
	product := &models.Product{
		Name:      name,
		Price:     price,
		Available: true,
	}
	if err := s.validate.Struct(product); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	s.publish(models.EventProductCreated, product.ID, product)
	return product, nil
}

// UpdateProduct overwrites name, price and availability of an existing product.
func (s *ProductService) UpdateProduct(id int, changes models.Product) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	updated := *product
	updated.Name = changes.Name
	updated.Price = changes.Price
	updated.Available = changes.Available
	if err := s.validate.Struct(updated); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	if err := s.repo.Update(&updated); err != nil {
		return nil, err
	}
	s.publish(models.EventProductUpdated, updated.ID, &updated)
	return &updated, nil
}

// ToggleAvailability flips the availability of an existing product.
func (s *ProductService) ToggleAvailability(id int) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.SetAvailability(id, !product.Available)
	if err != nil {
		return nil, err
	}
	s.publish(models.EventProductAvailabilityChanged, updated.ID, updated)
	return updated, nil
}

// DeleteProduct permanently deletes an existing product.
func (s *ProductService) DeleteProduct(id int) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(models.EventProductDeleted, id, nil)
	return nil
}

// publish emits an event; failures are logged and never fail the request.
func (s *ProductService) publish(eventType string, id int, product *models.Product) {
	if s.publisher == nil {
		return
	}
	event := models.ProductEvent{
		Type:       eventType,
		ProductID:  id,
		Product:    product,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishProductEvent(event); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":      eventType,
			"product_id": id,
		}).Warn("Failed to publish product event")
	}
}
