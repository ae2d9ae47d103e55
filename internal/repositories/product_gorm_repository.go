package repositories

import (
	"medwear/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// preloaded returns a query with the full aggregate attached.
func (r *GORMProductRepository) preloaded() *gorm.DB {
	return r.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Options.Values", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Variants").
		Preload("Variants.OptionValues")
}

// Create creates a new product.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return translate("create product", err)
	}
	return nil
}

// GetByID retrieves a product with images, options and variants.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.preloaded().First(&product, "id = ?", id).Error; err != nil {
		return nil, translate("get product by id", err)
	}
	return &product, nil
}

// GetBySlug retrieves a product by its storefront slug.
func (r *GORMProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.preloaded().First(&product, "slug = ?", slug).Error; err != nil {
		return nil, translate("get product by slug", err)
	}
	return &product, nil
}

// GetBySKU retrieves a product by SKU.
func (r *GORMProductRepository) GetBySKU(sku string) (*models.Product, error) {
	var product models.Product
	if err := r.preloaded().First(&product, "sku = ?", sku).Error; err != nil {
		return nil, translate("get product by sku", err)
	}
	return &product, nil
}

// List returns products matching the filter, newest first. Listings carry
// images only; the full aggregate is loaded on the detail path.
func (r *GORMProductRepository) List(filter ProductFilter) ([]models.Product, error) {
	q := r.db.Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Order("created_at DESC")
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.BrandID != "" {
		q = q.Where("brand_id = ?", filter.BrandID)
	}
	if filter.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, translate("list products", err)
	}
	return products, nil
}

// Update saves all product fields.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Omit("Images", "Options", "Variants").Save(product)
	if res.Error != nil {
		return translate("update product", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update product", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes a product and its dependent rows. The sqlite schema has no
// enforced foreign keys, so the cascade happens here.
func (r *GORMProductRepository) Delete(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Delete(&models.ProductImage{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		var optionIDs []string
		if err := tx.Model(&models.ProductOption{}).Where("product_id = ?", id).Pluck("id", &optionIDs).Error; err != nil {
			return err
		}
		if len(optionIDs) > 0 {
			if err := tx.Delete(&models.ProductOptionValue{}, "option_id IN ?", optionIDs).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.ProductOption{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		var variantIDs []string
		if err := tx.Model(&models.ProductVariant{}).Where("product_id = ?", id).Pluck("id", &variantIDs).Error; err != nil {
			return err
		}
		if len(variantIDs) > 0 {
			if err := tx.Delete(&models.ProductVariantOptionValue{}, "variant_id IN ?", variantIDs).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.ProductVariant{}, "product_id = ?", id).Error
	})
	if err != nil {
		return translate("delete product", err)
	}
	return nil
}

// AddImage attaches an image to a product.
func (r *GORMProductRepository) AddImage(image *models.ProductImage) error {
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	if err := r.db.Create(image).Error; err != nil {
		return translate("add product image", err)
	}
	return nil
}

// UpdateImage saves all image fields.
func (r *GORMProductRepository) UpdateImage(image *models.ProductImage) error {
	res := r.db.Save(image)
	if res.Error != nil {
		return translate("update product image", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update product image", gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteImage removes an image. Sort orders of the remaining images are left
// as-is; gaps are harmless since ordering is relative.
func (r *GORMProductRepository) DeleteImage(id string) error {
	res := r.db.Delete(&models.ProductImage{}, "id = ?", id)
	if res.Error != nil {
		return translate("delete product image", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete product image", gorm.ErrRecordNotFound)
	}
	return nil
}

// AddOption declares an option (e.g. Size) on a product.
func (r *GORMProductRepository) AddOption(option *models.ProductOption) error {
	if option.ID == "" {
		option.ID = uuid.New().String()
	}
	for i := range option.Values {
		if option.Values[i].ID == "" {
			option.Values[i].ID = uuid.New().String()
		}
		option.Values[i].OptionID = option.ID
	}
	if err := r.db.Create(option).Error; err != nil {
		return translate("add product option", err)
	}
	return nil
}

// AddOptionValue appends a value to an existing option.
func (r *GORMProductRepository) AddOptionValue(value *models.ProductOptionValue) error {
	if value.ID == "" {
		value.ID = uuid.New().String()
	}
	if err := r.db.Create(value).Error; err != nil {
		return translate("add option value", err)
	}
	return nil
}

// DeleteOption removes an option and its values.
func (r *GORMProductRepository) DeleteOption(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.ProductOption{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.ProductOptionValue{}, "option_id = ?", id).Error
	})
	if err != nil {
		return translate("delete product option", err)
	}
	return nil
}

// CreateVariant creates a sellable variant.
func (r *GORMProductRepository) CreateVariant(variant *models.ProductVariant) error {
	if variant.ID == "" {
		variant.ID = uuid.New().String()
	}
	for i := range variant.OptionValues {
		if variant.OptionValues[i].ID == "" {
			variant.OptionValues[i].ID = uuid.New().String()
		}
		variant.OptionValues[i].VariantID = variant.ID
	}
	if err := r.db.Create(variant).Error; err != nil {
		return translate("create variant", err)
	}
	return nil
}

// GetVariantByID retrieves a variant with its option value links.
func (r *GORMProductRepository) GetVariantByID(id string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.db.Preload("OptionValues").First(&variant, "id = ?", id).Error; err != nil {
		return nil, translate("get variant by id", err)
	}
	return &variant, nil
}

// UpdateVariant saves all variant fields.
func (r *GORMProductRepository) UpdateVariant(variant *models.ProductVariant) error {
	res := r.db.Omit("OptionValues").Save(variant)
	if res.Error != nil {
		return translate("update variant", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update variant", gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteVariant removes a variant and its option value links.
func (r *GORMProductRepository) DeleteVariant(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.ProductVariant{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.ProductVariantOptionValue{}, "variant_id = ?", id).Error
	})
	if err != nil {
		return translate("delete variant", err)
	}
	return nil
}

// LinkVariantOptionValue records one (variant, chosen value) pair.
func (r *GORMProductRepository) LinkVariantOptionValue(link *models.ProductVariantOptionValue) error {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	if err := r.db.Create(link).Error; err != nil {
		return translate("link variant option value", err)
	}
	return nil
}
