package repositories

import "medwear/internal/models"

// CatalogRepository defines data access for categories and brands.
type CatalogRepository interface {
	CreateCategory(category *models.Category) error
	GetCategoryByID(id string) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	UpdateCategory(category *models.Category) error
	DeleteCategory(id string) error

	CreateBrand(brand *models.Brand) error
	GetBrandByID(id string) (*models.Brand, error)
	GetBrandBySlug(slug string) (*models.Brand, error)
	ListBrands(featuredOnly bool) ([]models.Brand, error)
	UpdateBrand(brand *models.Brand) error
	DeleteBrand(id string) error
}
