package services

import (
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"
)

// ContentService manages merchandising collections and the blog.
type ContentService struct {
	repo repositories.ContentRepository
}

// NewContentService creates a new ContentService.
func NewContentService(repo repositories.ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

// CreateCollection creates a collection, deriving the slug when absent.
func (s *ContentService) CreateCollection(collection *models.Collection) error {
	if collection.Slug == "" {
		collection.Slug = Slugify(collection.Name)
	}
	return s.repo.CreateCollection(collection)
}

// GetCollection returns a collection by id (admin path, drafts included).
func (s *ContentService) GetCollection(id string) (*models.Collection, error) {
	return s.repo.GetCollectionByID(id)
}

// GetPublishedCollection returns a collection by slug for the storefront;
// unpublished collections are reported as not found.
func (s *ContentService) GetPublishedCollection(slug string) (*models.Collection, error) {
	collection, err := s.repo.GetCollectionBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !collection.IsPublished {
		return nil, repositories.ErrNotFound
	}
	return collection, nil
}

// ListCollections returns collections; publishedOnly is the storefront path.
func (s *ContentService) ListCollections(publishedOnly bool) ([]models.Collection, error) {
	return s.repo.ListCollections(publishedOnly)
}

// UpdateCollection saves collection changes.
func (s *ContentService) UpdateCollection(collection *models.Collection) error {
	if collection.Slug == "" {
		collection.Slug = Slugify(collection.Name)
	}
	collection.UpdatedAt = time.Now()
	return s.repo.UpdateCollection(collection)
}

// DeleteCollection removes a collection; its product links go with it.
func (s *ContentService) DeleteCollection(id string) error {
	return s.repo.DeleteCollection(id)
}

// AddProductToCollection links a product at the given sort position.
func (s *ContentService) AddProductToCollection(collectionID, productID string, sortOrder int) error {
	return s.repo.AddCollectionProduct(&models.CollectionProduct{
		CollectionID: collectionID,
		ProductID:    productID,
		SortOrder:    sortOrder,
	})
}

// RemoveProductFromCollection unlinks a product.
func (s *ContentService) RemoveProductFromCollection(collectionID, productID string) error {
	return s.repo.RemoveCollectionProduct(collectionID, productID)
}

// CreateBlogPost creates a post, deriving the slug when absent. Publishing
// without an explicit date stamps it now.
func (s *ContentService) CreateBlogPost(post *models.BlogPost) error {
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	return s.repo.CreateBlogPost(post)
}

// GetBlogPost returns a post by id (admin path, drafts included).
func (s *ContentService) GetBlogPost(id string) (*models.BlogPost, error) {
	return s.repo.GetBlogPostByID(id)
}

// GetVisibleBlogPost returns a live post by slug; drafts and scheduled posts
// are reported as not found.
func (s *ContentService) GetVisibleBlogPost(slug string) (*models.BlogPost, error) {
	post, err := s.repo.GetBlogPostBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !post.Visible(time.Now()) {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

// ListBlogPosts returns posts; publishedOnly is the storefront path.
func (s *ContentService) ListBlogPosts(publishedOnly bool) ([]models.BlogPost, error) {
	return s.repo.ListBlogPosts(publishedOnly)
}

// UpdateBlogPost saves post changes, stamping PublishedAt on first publish.
func (s *ContentService) UpdateBlogPost(post *models.BlogPost) error {
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	post.UpdatedAt = time.Now()
	return s.repo.UpdateBlogPost(post)
}

// DeleteBlogPost removes a post; its category links go with it.
func (s *ContentService) DeleteBlogPost(id string) error {
	return s.repo.DeleteBlogPost(id)
}

// TagBlogPost replaces the post's category set.
func (s *ContentService) TagBlogPost(postID string, categoryIDs []string) error {
	return s.repo.SetBlogPostCategories(postID, categoryIDs)
}

// CreateBlogCategory creates a tag, deriving the slug when absent.
func (s *ContentService) CreateBlogCategory(category *models.BlogCategory) error {
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}
	return s.repo.CreateBlogCategory(category)
}

// ListBlogCategories returns all tags.
func (s *ContentService) ListBlogCategories() ([]models.BlogCategory, error) {
	return s.repo.ListBlogCategories()
}

// DeleteBlogCategory removes a tag and its join rows.
func (s *ContentService) DeleteBlogCategory(id string) error {
	return s.repo.DeleteBlogCategory(id)
}
