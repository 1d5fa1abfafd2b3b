package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"productos/internal/config"
	"productos/internal/middleware"
	"productos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockProductRepository is a mock implementation of repositories.ProductRepository
type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductRepository) GetByID(id int) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductRepository) Create(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepository) Update(product *models.Product) error {
	return m.Called(product).Error(0)
}

func (m *mockProductRepository) SetAvailability(id int, available bool) (*models.Product, error) {
	args := m.Called(id, available)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductRepository) Delete(id int) error {
	return m.Called(id).Error(0)
}

func TestHandlers_StoreFaultsBecomeInternalErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	repo := new(mockProductRepository)
	repo.On("GetAll").Return(nil, storeErr)
	repo.On("GetByID", 1).Return(nil, storeErr)
	repo.On("Create", mock.Anything).Return(storeErr)

	app := newApp(&config.Config{}, repo)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"list", http.MethodGet, "/api/products", nil},
		{"get", http.MethodGet, "/api/products/1", nil},
		{"create", http.MethodPost, "/api/products", map[string]interface{}{"name": "Mouse", "price": 10}},
		{"update", http.MethodPut, "/api/products/1", map[string]interface{}{"name": "Mouse", "price": 10, "available": true}},
		{"toggle", http.MethodPatch, "/api/products/1", nil},
		{"delete", http.MethodDelete, "/api/products/1", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

			var body errorResponse
			decode(t, resp, &body)
			assert.Equal(t, middleware.MsgInternalError, body.Error)
		})
	}
}

func TestHandlers_ValidationFailuresNeverReachTheStore(t *testing.T) {
	repo := new(mockProductRepository)
	app := newApp(&config.Config{}, repo)

	doRequest(t, app, http.MethodPost, "/api/products", nil)
	doRequest(t, app, http.MethodPut, "/api/products/abc", nil)
	doRequest(t, app, http.MethodPatch, "/api/products/abc", nil)
	doRequest(t, app, http.MethodDelete, "/api/products/abc", nil)
	doRequest(t, app, http.MethodGet, "/api/products/abc", nil)

	repo.AssertNotCalled(t, "Create", mock.Anything)
	repo.AssertNotCalled(t, "GetByID", mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestHandlers_CreateNormalizesNumericStrings(t *testing.T) {
	repo := new(mockProductRepository)
	repo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Name == "Mouse" && p.Price == 12.5 && p.Available
	})).Return(nil).Once()

	app := newApp(&config.Config{}, repo)

	resp := doRequest(t, app, http.MethodPost, "/api/products", map[string]interface{}{
		"name":  "Mouse",
		"price": "12.5",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	repo.AssertExpectations(t)
}
