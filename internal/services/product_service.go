package services

import (
	"fmt"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ProductService handles the catalog: products and their category labels.
type ProductService struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
	validate   *validator.Validate
}

// NewProductService creates a new ProductService.
func NewProductService(products repositories.ProductRepository, categories repositories.CategoryRepository) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		validate:   validator.New(),
	}
}

// CreateProduct validates and inserts a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.validate.Struct(product); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}
	return s.products.Create(product)
}

// GetProduct retrieves a product by id, nil when absent.
func (s *ProductService) GetProduct(id uint) (*models.Product, error) {
	return s.products.GetByID(id)
}

// ProductsByStore lists a store's products ordered by name.
func (s *ProductService) ProductsByStore(storeID uint) ([]models.Product, error) {
	return s.products.GetByStore(storeID)
}

// UpdateProduct validates and applies a partial update.
func (s *ProductService) UpdateProduct(id uint, update models.ProductUpdate) error {
	if err := s.validate.Struct(update); err != nil {
		return fmt.Errorf("invalid product update: %w", err)
	}
	return s.products.Update(id, update)
}

// DeleteProduct removes a product and, through the cascade, its audit log.
func (s *ProductService) DeleteProduct(id uint) error {
	return s.products.Delete(id)
}

// CreateCategory validates and inserts a new category label.
func (s *ProductService) CreateCategory(category *models.Category) error {
	if err := s.validate.Struct(category); err != nil {
		return fmt.Errorf("invalid category: %w", err)
	}
	return s.categories.Create(category)
}

// CategoriesByStore lists a store's category labels ordered by name.
func (s *ProductService) CategoriesByStore(storeID uint) ([]models.Category, error) {
	return s.categories.GetByStore(storeID)
}

// UpdateCategory validates and applies a partial update.
func (s *ProductService) UpdateCategory(id uint, update models.CategoryUpdate) error {
	if err := s.validate.Struct(update); err != nil {
		return fmt.Errorf("invalid category update: %w", err)
	}
	return s.categories.Update(id, update)
}

// DeleteCategory removes a category label.
func (s *ProductService) DeleteCategory(id uint) error {
	return s.categories.Delete(id)
}
