package repositories

import "medwear/internal/models"

// ProductFilter narrows product listings. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID    string
	BrandID       string
	AvailableOnly bool
	Offset        int
	Limit         int
}

// ProductRepository defines data access for the product aggregate: products,
// images, options with their values, and variants.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id string) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	GetBySKU(sku string) (*models.Product, error)
	List(filter ProductFilter) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id string) error

	AddImage(image *models.ProductImage) error
	UpdateImage(image *models.ProductImage) error
	DeleteImage(id string) error

	AddOption(option *models.ProductOption) error
	AddOptionValue(value *models.ProductOptionValue) error
	DeleteOption(id string) error

	CreateVariant(variant *models.ProductVariant) error
	GetVariantByID(id string) (*models.ProductVariant, error)
	UpdateVariant(variant *models.ProductVariant) error
	DeleteVariant(id string) error
	LinkVariantOptionValue(link *models.ProductVariantOptionValue) error
}
