package repositories

import (
	"medwear/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{db: db}
}

// CreateCategory creates a new category.
func (r *GORMCatalogRepository) CreateCategory(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return translate("create category", err)
	}
	return nil
}

// GetCategoryByID retrieves a category by id.
func (r *GORMCatalogRepository) GetCategoryByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, translate("get category by id", err)
	}
	return &category, nil
}

// GetCategoryBySlug retrieves a category by its slug.
func (r *GORMCatalogRepository) GetCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "slug = ?", slug).Error; err != nil {
		return nil, translate("get category by slug", err)
	}
	return &category, nil
}

// ListCategories returns all categories ordered by name.
func (r *GORMCatalogRepository) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, translate("list categories", err)
	}
	return categories, nil
}

// UpdateCategory saves all category fields.
func (r *GORMCatalogRepository) UpdateCategory(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		return translate("update category", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update category", gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteCategory removes a category.
func (r *GORMCatalogRepository) DeleteCategory(id string) error {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return translate("delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete category", gorm.ErrRecordNotFound)
	}
	return nil
}

// CreateBrand creates a new brand.
func (r *GORMCatalogRepository) CreateBrand(brand *models.Brand) error {
	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}
	if err := r.db.Create(brand).Error; err != nil {
		return translate("create brand", err)
	}
	return nil
}

// GetBrandByID retrieves a brand by id.
func (r *GORMCatalogRepository) GetBrandByID(id string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, "id = ?", id).Error; err != nil {
		return nil, translate("get brand by id", err)
	}
	return &brand, nil
}

// GetBrandBySlug retrieves a brand by its slug.
func (r *GORMCatalogRepository) GetBrandBySlug(slug string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, "slug = ?", slug).Error; err != nil {
		return nil, translate("get brand by slug", err)
	}
	return &brand, nil
}

// ListBrands returns brands, optionally only featured ones.
func (r *GORMCatalogRepository) ListBrands(featuredOnly bool) ([]models.Brand, error) {
	q := r.db.Order("name ASC")
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
	}
	var brands []models.Brand
	if err := q.Find(&brands).Error; err != nil {
		return nil, translate("list brands", err)
	}
	return brands, nil
}

// UpdateBrand saves all brand fields.
func (r *GORMCatalogRepository) UpdateBrand(brand *models.Brand) error {
	res := r.db.Save(brand)
	if res.Error != nil {
		return translate("update brand", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update brand", gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteBrand removes a brand.
func (r *GORMCatalogRepository) DeleteBrand(id string) error {
	res := r.db.Delete(&models.Brand{}, "id = ?", id)
	if res.Error != nil {
		return translate("delete brand", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete brand", gorm.ErrRecordNotFound)
	}
	return nil
}
