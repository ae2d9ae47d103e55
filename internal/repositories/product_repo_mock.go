package repositories

import (
	"fmt"
	"sync"

	"medwear/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository,
// used for local development and seeding without a database.
type MockProductRepository struct {
	products map[string]models.Product
	variants map[string]models.ProductVariant
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
		variants: make(map[string]models.ProductVariant),
	}
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for id, p := range r.products {
		if id != product.ID && (p.Slug == product.Slug || p.SKU == product.SKU) {
			return fmt.Errorf("create product: %w", ErrDuplicate)
		}
	}
	r.products[product.ID] = *product
	return nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("get product by id: %w", ErrNotFound)
	}
	return &product, nil
}

// GetBySlug returns a product by its slug.
func (r *MockProductRepository) GetBySlug(slug string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.Slug == slug {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("get product by slug: %w", ErrNotFound)
}

// GetBySKU returns a product by its SKU.
func (r *MockProductRepository) GetBySKU(sku string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.SKU == sku {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("get product by sku: %w", ErrNotFound)
}

// List returns products matching the filter.
func (r *MockProductRepository) List(filter ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	products := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.BrandID != "" && p.BrandID != filter.BrandID {
			continue
		}
		if filter.AvailableOnly && !p.IsAvailable {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("update product: %w", ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("delete product: %w", ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// AddImage attaches an image to a stored product.
func (r *MockProductRepository) AddImage(image *models.ProductImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[image.ProductID]
	if !ok {
		return fmt.Errorf("add product image: %w", ErrNotFound)
	}
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	product.Images = append(product.Images, *image)
	r.products[image.ProductID] = product
	return nil
}

// UpdateImage replaces a stored image.
func (r *MockProductRepository) UpdateImage(image *models.ProductImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[image.ProductID]
	if !ok {
		return fmt.Errorf("update product image: %w", ErrNotFound)
	}
	for i := range product.Images {
		if product.Images[i].ID == image.ID {
			product.Images[i] = *image
			r.products[image.ProductID] = product
			return nil
		}
	}
	return fmt.Errorf("update product image: %w", ErrNotFound)
}

// DeleteImage removes an image from whichever product holds it.
func (r *MockProductRepository) DeleteImage(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for pid, product := range r.products {
		for i := range product.Images {
			if product.Images[i].ID == id {
				product.Images = append(product.Images[:i], product.Images[i+1:]...)
				r.products[pid] = product
				return nil
			}
		}
	}
	return fmt.Errorf("delete product image: %w", ErrNotFound)
}

// AddOption declares an option on a stored product.
func (r *MockProductRepository) AddOption(option *models.ProductOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[option.ProductID]
	if !ok {
		return fmt.Errorf("add product option: %w", ErrNotFound)
	}
	if option.ID == "" {
		option.ID = uuid.New().String()
	}
	for i := range option.Values {
		if option.Values[i].ID == "" {
			option.Values[i].ID = uuid.New().String()
		}
		option.Values[i].OptionID = option.ID
	}
	product.Options = append(product.Options, *option)
	r.products[option.ProductID] = product
	return nil
}

// AddOptionValue appends a value to a stored option.
func (r *MockProductRepository) AddOptionValue(value *models.ProductOptionValue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if value.ID == "" {
		value.ID = uuid.New().String()
	}
	for pid, product := range r.products {
		for i := range product.Options {
			if product.Options[i].ID == value.OptionID {
				product.Options[i].Values = append(product.Options[i].Values, *value)
				r.products[pid] = product
				return nil
			}
		}
	}
	return fmt.Errorf("add option value: %w", ErrNotFound)
}

// DeleteOption removes an option and its values.
func (r *MockProductRepository) DeleteOption(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for pid, product := range r.products {
		for i := range product.Options {
			if product.Options[i].ID == id {
				product.Options = append(product.Options[:i], product.Options[i+1:]...)
				r.products[pid] = product
				return nil
			}
		}
	}
	return fmt.Errorf("delete product option: %w", ErrNotFound)
}

// CreateVariant stores a variant.
func (r *MockProductRepository) CreateVariant(variant *models.ProductVariant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[variant.ProductID]; !ok {
		return fmt.Errorf("create variant: %w", ErrNotFound)
	}
	if variant.ID == "" {
		variant.ID = uuid.New().String()
	}
	for _, v := range r.variants {
		if v.SKU == variant.SKU {
			return fmt.Errorf("create variant: %w", ErrDuplicate)
		}
	}
	r.variants[variant.ID] = *variant
	return nil
}

// GetVariantByID returns a variant by its ID.
func (r *MockProductRepository) GetVariantByID(id string) (*models.ProductVariant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	variant, ok := r.variants[id]
	if !ok {
		return nil, fmt.Errorf("get variant by id: %w", ErrNotFound)
	}
	return &variant, nil
}

// UpdateVariant replaces a stored variant.
func (r *MockProductRepository) UpdateVariant(variant *models.ProductVariant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.variants[variant.ID]; !ok {
		return fmt.Errorf("update variant: %w", ErrNotFound)
	}
	r.variants[variant.ID] = *variant
	return nil
}

// DeleteVariant removes a variant.
func (r *MockProductRepository) DeleteVariant(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.variants[id]; !ok {
		return fmt.Errorf("delete variant: %w", ErrNotFound)
	}
	delete(r.variants, id)
	return nil
}

// LinkVariantOptionValue records a (variant, value) pair on the variant.
func (r *MockProductRepository) LinkVariantOptionValue(link *models.ProductVariantOptionValue) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	variant, ok := r.variants[link.VariantID]
	if !ok {
		return fmt.Errorf("link variant option value: %w", ErrNotFound)
	}
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	variant.OptionValues = append(variant.OptionValues, *link)
	r.variants[link.VariantID] = variant
	return nil
}
