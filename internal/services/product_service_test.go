package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Ishita1406/groceryApp/internal/models"
	"github.com/Ishita1406/groceryApp/internal/repositories"
	"github.com/Ishita1406/groceryApp/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(filter repositories.ProductFilter, page, limit int) ([]models.Product, int64, error) {
	args := m.Called(filter, page, limit)
	return args.Get(0).([]models.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
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

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := []models.Product{
		{ID: "1", Name: "Red Apple", Price: 40, Category: "Fruits", Stock: 50},
		{ID: "2", Name: "Milk 1L", Price: 50, Category: "Dairy", Stock: 200},
	}
	filter := repositories.ProductFilter{Category: "Fruits"}

	// Valid paging values pass through unchanged
	mockRepo.On("List", filter, 2, 5).Return(expected, int64(12), nil).Once()
	products, total, err := service.ListProducts(filter, 2, 5)
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	assert.Equal(t, int64(12), total)
	mockRepo.AssertExpectations(t)

	// Non-positive page and limit coerce to the defaults
	mockRepo.On("List", filter, services.DefaultPage, services.DefaultLimit).
		Return([]models.Product{}, int64(0), nil).Once()
	products, total, err = service.ListProducts(filter, 0, -3)
	assert.NoError(t, err)
	assert.Empty(t, products)
	assert.Equal(t, int64(0), total)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := &models.Product{ID: "1", Name: "Red Apple", Price: 40, Category: "Fruits", Stock: 50}

	mockRepo.On("GetByID", "1").Return(expected, nil).Once()
	product, err := service.GetProductByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)
	mockRepo.AssertExpectations(t)

	mockRepo.On("GetByID", "99").Return(nil, repositories.ErrProductNotFound).Once()
	product, err = service.GetProductByID("99")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	newProduct := &models.Product{Name: "Paneer 200g", Price: 120, Category: "Dairy", Stock: 40}

	mockRepo.On("Create", newProduct).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := &models.Product{
		ID:          "1",
		Name:        "Milk 1L",
		Price:       50,
		Category:    "Dairy",
		Stock:       200,
		Description: "Full cream milk",
	}

	// Partial update: only the supplied fields overwrite, the rest of the
	// record is left untouched.
	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "1" &&
			p.Name == "Milk 1L" &&
			p.Price == 55 &&
			p.Category == "Dairy" &&
			p.Stock == 150 &&
			p.Description == "Full cream milk"
	})).Return(nil).Once()

	updated, err := service.UpdateProduct("1", services.ProductUpdate{
		Price: floatPtr(55),
		Stock: intPtr(150),
	})
	assert.NoError(t, err)
	assert.Equal(t, 55.0, updated.Price)
	assert.Equal(t, 150, updated.Stock)
	assert.Equal(t, "Milk 1L", updated.Name)
	mockRepo.AssertExpectations(t)

	// Updating a missing product never creates one
	mockRepo.On("GetByID", "99").Return(nil, repositories.ErrProductNotFound).Once()
	_, err = service.UpdateProduct("99", services.ProductUpdate{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := &models.Product{ID: "1", Name: "Red Apple", Price: 40, Category: "Fruits", Stock: 50}

	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Deleting a missing id is an error, not a no-op
	mockRepo.On("GetByID", "99").Return(nil, repositories.ErrProductNotFound).Once()
	err = service.DeleteProduct("99")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}
