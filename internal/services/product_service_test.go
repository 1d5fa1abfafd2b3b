package services_test

import (
	"errors"
	"fmt"
	"testing"

	"productos/internal/models"
	"productos/internal/repositories"
	"productos/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id int) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) SetAvailability(id int, available bool) (*models.Product, error) {
	args := m.Called(id, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductEvent(event models.ProductEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func eventOfType(eventType string) interface{} {
	return mock.MatchedBy(func(e models.ProductEvent) bool { return e.Type == eventType })
}

func notFound(id int) error {
	return fmt.Errorf("product with ID %d: %w", id, repositories.ErrProductNotFound)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: 2, Name: "Product B", Price: 20.0, Available: true},
		{ID: 1, Name: "Product A", Price: 10.0, Available: false},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProduct := &models.Product{ID: 1, Name: "Product A", Price: 10.0, Available: true}

	mockRepo.On("GetByID", 1).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	mockRepo.On("GetByID", 99).Return(nil, notFound(99)).Once()
	product, err = service.GetProductByID(99)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, publisher)

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Name == "Mouse Scroll - Testing" && p.Price == 350 && p.Available
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Product).ID = 1
	}).Return(nil).Once()
	publisher.On("PublishProductEvent", eventOfType(models.EventProductCreated)).Return(nil).Once()

	product, err := service.CreateProduct("Mouse Scroll - Testing", 350)
	assert.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.True(t, product.Available)

	// Repository failures are returned as is and nothing is published.
	mockRepo.On("Create", mock.Anything).Return(errors.New("database error")).Once()
	_, err = service.CreateProduct("Teclado", 20)
	assert.EqualError(t, err, "database error")

	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestProductService_CreateProduct_RejectsInvalidProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	_, err := service.CreateProduct("Teclado", 0)
	assert.Error(t, err)

	_, err = service.CreateProduct("", 10)
	assert.Error(t, err)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, publisher)

	existing := &models.Product{ID: 1, Name: "Monitor", Price: 100, Available: true}
	changes := models.Product{Name: "Monitor Curvo 42 pulgadas", Price: 300, Available: false}

	mockRepo.On("GetByID", 1).Return(existing, nil).Once()
	mockRepo.On("Update", &models.Product{ID: 1, Name: "Monitor Curvo 42 pulgadas", Price: 300, Available: false}).Return(nil).Once()
	publisher.On("PublishProductEvent", eventOfType(models.EventProductUpdated)).Return(nil).Once()

	updated, err := service.UpdateProduct(1, changes)
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "Monitor Curvo 42 pulgadas", updated.Name)
	assert.False(t, updated.Available)

	mockRepo.On("GetByID", 500).Return(nil, notFound(500)).Once()
	_, err = service.UpdateProduct(500, changes)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestProductService_ToggleAvailability(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetByID", 1).Return(&models.Product{ID: 1, Name: "Mouse", Price: 350, Available: true}, nil).Once()
	mockRepo.On("SetAvailability", 1, false).Return(&models.Product{ID: 1, Name: "Mouse", Price: 350, Available: false}, nil).Once()

	product, err := service.ToggleAvailability(1)
	assert.NoError(t, err)
	assert.False(t, product.Available)

	mockRepo.On("GetByID", 5000).Return(nil, notFound(5000)).Once()
	_, err = service.ToggleAvailability(5000)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "SetAvailability", 5000, mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, publisher)

	mockRepo.On("GetByID", 1).Return(&models.Product{ID: 1}, nil).Once()
	mockRepo.On("Delete", 1).Return(nil).Once()
	// A broker failure must not fail the deletion.
	publisher.On("PublishProductEvent", eventOfType(models.EventProductDeleted)).Return(errors.New("broker down")).Once()

	err := service.DeleteProduct(1)
	assert.NoError(t, err)

	mockRepo.On("GetByID", 5000).Return(nil, notFound(5000)).Once()
	err = service.DeleteProduct(5000)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Delete", 5000)
	publisher.AssertExpectations(t)
}
