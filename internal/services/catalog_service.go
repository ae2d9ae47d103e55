package services

import (
	"strings"
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"
)

// Slugify derives a URL slug from a display name: lowercase, every
// non-alphanumeric run collapsed to a single hyphen, edges trimmed.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// CatalogService manages categories and brands.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// CreateCategory creates a category, deriving the slug from the name when the
// caller leaves it empty. Slug collisions surface as ErrDuplicate from the
// unique index.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	return s.repo.CreateCategory(category)
}

// GetCategory returns a category by id.
func (s *CatalogService) GetCategory(id string) (*models.Category, error) {
	return s.repo.GetCategoryByID(id)
}

// GetCategoryBySlug returns a category by its slug.
func (s *CatalogService) GetCategoryBySlug(slug string) (*models.Category, error) {
	return s.repo.GetCategoryBySlug(slug)
}

// ListCategories returns all categories.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.repo.ListCategories()
}

// UpdateCategory saves category changes.
func (s *CatalogService) UpdateCategory(category *models.Category) error {
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	category.UpdatedAt = time.Now()
	return s.repo.UpdateCategory(category)
}

// DeleteCategory removes a category.
func (s *CatalogService) DeleteCategory(id string) error {
	return s.repo.DeleteCategory(id)
}

// CreateBrand creates a brand, deriving the slug when absent.
func (s *CatalogService) CreateBrand(brand *models.Brand) error {
	if brand.Slug == "" {
		brand.Slug = Slugify(brand.Name)
	}
	return s.repo.CreateBrand(brand)
}

// GetBrand returns a brand by id.
func (s *CatalogService) GetBrand(id string) (*models.Brand, error) {
	return s.repo.GetBrandByID(id)
}

// GetBrandBySlug returns a brand by its slug.
func (s *CatalogService) GetBrandBySlug(slug string) (*models.Brand, error) {
	return s.repo.GetBrandBySlug(slug)
}

// ListBrands returns brands, optionally only featured ones.
func (s *CatalogService) ListBrands(featuredOnly bool) ([]models.Brand, error) {
	return s.repo.ListBrands(featuredOnly)
}

// UpdateBrand saves brand changes.
func (s *CatalogService) UpdateBrand(brand *models.Brand) error {
	if brand.Slug == "" {
		brand.Slug = Slugify(brand.Name)
	}
	brand.UpdatedAt = time.Now()
	return s.repo.UpdateBrand(brand)
}

// DeleteBrand removes a brand.
func (s *CatalogService) DeleteBrand(id string) error {
	return s.repo.DeleteBrand(id)
}
