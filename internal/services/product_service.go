package services

import (
	"fmt"
	"strings"
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"
)

// ProductService handles business logic for the product aggregate.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// GenerateSKU builds the default SKU: the first three alphanumeric characters
// of the name, uppercased, plus the last six digits of the creation
// timestamp. Rapid successive creates can collide, so the unique index still
// has the final word.
func GenerateSKU(name string, at time.Time) string {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			prefix.WriteRune(r)
			if prefix.Len() >= 3 {
				break
			}
		}
	}
	if prefix.Len() == 0 {
		prefix.WriteString("SKU")
	}
	return fmt.Sprintf("%s%06d", prefix.String(), at.Unix()%1000000)
}

// CreateProduct creates a product, filling in slug and SKU defaults.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Slug == "" {
		product.Slug = Slugify(product.Name)
	}
	if product.SKU == "" {
		product.SKU = GenerateSKU(product.Name, time.Now())
	}
	return s.repo.Create(product)
}

// GetProduct returns the full aggregate by id.
func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductBySlug returns the full aggregate by storefront slug.
func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	return s.repo.GetBySlug(slug)
}

// GetProductBySKU returns the full aggregate by SKU.
func (s *ProductService) GetProductBySKU(sku string) (*models.Product, error) {
	return s.repo.GetBySKU(sku)
}

// ListProducts returns products matching the filter.
func (s *ProductService) ListProducts(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.List(filter)
}

// UpdateProduct saves product changes.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if product.Slug == "" {
		product.Slug = Slugify(product.Name)
	}
	product.UpdatedAt = time.Now()
	return s.repo.Update(product)
}

// DeleteProduct removes a product and its dependent rows.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

// AddImage attaches an image; marking it primary clears no other flags, the
// read path treats the first primary image as the thumbnail.
func (s *ProductService) AddImage(image *models.ProductImage) error {
	return s.repo.AddImage(image)
}

// DeleteImage removes an image.
func (s *ProductService) DeleteImage(id string) error {
	return s.repo.DeleteImage(id)
}

// AddOption declares an option with its ordered values on a product.
func (s *ProductService) AddOption(option *models.ProductOption) error {
	return s.repo.AddOption(option)
}

// DeleteOption removes an option and its values.
func (s *ProductService) DeleteOption(id string) error {
	return s.repo.DeleteOption(id)
}

// CreateVariant creates a sellable variant, defaulting its SKU from the
// parent's with a numeric suffix position left to the caller.
func (s *ProductService) CreateVariant(variant *models.ProductVariant) error {
	if variant.SKU == "" {
		parent, err := s.repo.GetByID(variant.ProductID)
		if err != nil {
			return err
		}
		variant.SKU = fmt.Sprintf("%s-%d", parent.SKU, len(parent.Variants)+1)
	}
	return s.repo.CreateVariant(variant)
}

// UpdateVariant saves variant changes.
func (s *ProductService) UpdateVariant(variant *models.ProductVariant) error {
	variant.UpdatedAt = time.Now()
	return s.repo.UpdateVariant(variant)
}

// DeleteVariant removes a variant.
func (s *ProductService) DeleteVariant(id string) error {
	return s.repo.DeleteVariant(id)
}

// ResolveVariant loads a variant and its parent, applying the inheritance
// rule: nil overrides fall back to the parent product.
func (s *ProductService) ResolveVariant(variantID string) (*models.Product, *models.ProductVariant, error) {
	variant, err := s.repo.GetVariantByID(variantID)
	if err != nil {
		return nil, nil, err
	}
	parent, err := s.repo.GetByID(variant.ProductID)
	if err != nil {
		return nil, nil, err
	}
	return parent, variant, nil
}
