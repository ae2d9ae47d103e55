package repositories

import (
	"medwear/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMContentRepository is a GORM implementation of ContentRepository.
type GORMContentRepository struct {
	db *gorm.DB
}

// NewGORMContentRepository creates a new instance of GORMContentRepository.
func NewGORMContentRepository(db *gorm.DB) *GORMContentRepository {
	return &GORMContentRepository{db: db}
}

// CreateCollection creates a new collection.
func (r *GORMContentRepository) CreateCollection(collection *models.Collection) error {
	if collection.ID == "" {
		collection.ID = uuid.New().String()
	}
	if err := r.db.Create(collection).Error; err != nil {
		return translate("create collection", err)
	}
	return nil
}

// GetCollectionByID retrieves a collection with its product links.
func (r *GORMContentRepository) GetCollectionByID(id string) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&collection, "id = ?", id).Error; err != nil {
		return nil, translate("get collection by id", err)
	}
	return &collection, nil
}

// GetCollectionBySlug retrieves a collection by slug.
func (r *GORMContentRepository) GetCollectionBySlug(slug string) (*models.Collection, error) {
	var collection models.Collection
	if err := r.db.Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		First(&collection, "slug = ?", slug).Error; err != nil {
		return nil, translate("get collection by slug", err)
	}
	return &collection, nil
}

// ListCollections returns collections, optionally only published ones.
func (r *GORMContentRepository) ListCollections(publishedOnly bool) ([]models.Collection, error) {
	q := r.db.Order("created_at DESC")
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	var collections []models.Collection
	if err := q.Find(&collections).Error; err != nil {
		return nil, translate("list collections", err)
	}
	return collections, nil
}

// UpdateCollection saves collection-level fields.
func (r *GORMContentRepository) UpdateCollection(collection *models.Collection) error {
	res := r.db.Omit("Products").Save(collection)
	if res.Error != nil {
		return translate("update collection", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update collection", gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteCollection removes a collection and cascades its join rows.
func (r *GORMContentRepository) DeleteCollection(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Collection{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.CollectionProduct{}, "collection_id = ?", id).Error
	})
	if err != nil {
		return translate("delete collection", err)
	}
	return nil
}

// AddCollectionProduct links a product into a collection.
func (r *GORMContentRepository) AddCollectionProduct(link *models.CollectionProduct) error {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	if err := r.db.Create(link).Error; err != nil {
		return translate("add collection product", err)
	}
	return nil
}

// RemoveCollectionProduct unlinks a product from a collection.
func (r *GORMContentRepository) RemoveCollectionProduct(collectionID, productID string) error {
	res := r.db.Delete(&models.CollectionProduct{}, "collection_id = ? AND product_id = ?", collectionID, productID)
	if res.Error != nil {
		return translate("remove collection product", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("remove collection product", gorm.ErrRecordNotFound)
	}
	return nil
}

// CreateBlogPost creates a new post.
func (r *GORMContentRepository) CreateBlogPost(post *models.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.db.Create(post).Error; err != nil {
		return translate("create blog post", err)
	}
	return nil
}

// GetBlogPostByID retrieves a post by id.
func (r *GORMContentRepository) GetBlogPostByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, translate("get blog post by id", err)
	}
	return &post, nil
}

// GetBlogPostBySlug retrieves a post by slug.
func (r *GORMContentRepository) GetBlogPostBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.First(&post, "slug = ?", slug).Error; err != nil {
		return nil, translate("get blog post by slug", err)
	}
	return &post, nil
}

// ListBlogPosts returns posts, newest first. publishedOnly additionally
// requires published_at to be in the past.
func (r *GORMContentRepository) ListBlogPosts(publishedOnly bool) ([]models.BlogPost, error) {
	q := r.db.Order("created_at DESC")
	if publishedOnly {
		q = q.Where("is_published = ? AND published_at IS NOT NULL AND published_at <= CURRENT_TIMESTAMP", true)
	}
	var posts []models.BlogPost
	if err := q.Find(&posts).Error; err != nil {
		return nil, translate("list blog posts", err)
	}
	return posts, nil
}

// UpdateBlogPost saves all post fields.
func (r *GORMContentRepository) UpdateBlogPost(post *models.BlogPost) error {
	res := r.db.Save(post)
	if res.Error != nil {
		return translate("update blog post", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("update blog post", gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteBlogPost removes a post and cascades its category join rows.
func (r *GORMContentRepository) DeleteBlogPost(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.BlogPost{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.BlogPostCategory{}, "post_id = ?", id).Error
	})
	if err != nil {
		return translate("delete blog post", err)
	}
	return nil
}

// SetBlogPostCategories replaces the post's tag set atomically.
func (r *GORMContentRepository) SetBlogPostCategories(postID string, categoryIDs []string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.BlogPostCategory{}, "post_id = ?", postID).Error; err != nil {
			return err
		}
		for _, categoryID := range categoryIDs {
			link := models.BlogPostCategory{
				ID:         uuid.New().String(),
				PostID:     postID,
				CategoryID: categoryID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return translate("set blog post categories", err)
	}
	return nil
}

// CreateBlogCategory creates a new blog category.
func (r *GORMContentRepository) CreateBlogCategory(category *models.BlogCategory) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return translate("create blog category", err)
	}
	return nil
}

// ListBlogCategories returns all blog categories ordered by name.
func (r *GORMContentRepository) ListBlogCategories() ([]models.BlogCategory, error) {
	var categories []models.BlogCategory
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, translate("list blog categories", err)
	}
	return categories, nil
}

// DeleteBlogCategory removes a blog category and its join rows.
func (r *GORMContentRepository) DeleteBlogCategory(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.BlogCategory{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&models.BlogPostCategory{}, "category_id = ?", id).Error
	})
	if err != nil {
		return translate("delete blog category", err)
	}
	return nil
}
