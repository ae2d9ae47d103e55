package repositories

import "medwear/internal/models"

// ContentRepository defines data access for merchandising collections and the
// blog. Join rows (collection products, post categories) live and die with
// their parent; the cascade is done here since the schema has no enforced
// foreign keys.
type ContentRepository interface {
	CreateCollection(collection *models.Collection) error
	GetCollectionByID(id string) (*models.Collection, error)
	GetCollectionBySlug(slug string) (*models.Collection, error)
	ListCollections(publishedOnly bool) ([]models.Collection, error)
	UpdateCollection(collection *models.Collection) error
	DeleteCollection(id string) error
	AddCollectionProduct(link *models.CollectionProduct) error
	RemoveCollectionProduct(collectionID, productID string) error

	CreateBlogPost(post *models.BlogPost) error
	GetBlogPostByID(id string) (*models.BlogPost, error)
	GetBlogPostBySlug(slug string) (*models.BlogPost, error)
	ListBlogPosts(publishedOnly bool) ([]models.BlogPost, error)
	UpdateBlogPost(post *models.BlogPost) error
	DeleteBlogPost(id string) error
	// SetBlogPostCategories replaces the post's category tags.
	SetBlogPostCategories(postID string, categoryIDs []string) error

	CreateBlogCategory(category *models.BlogCategory) error
	ListBlogCategories() ([]models.BlogCategory, error)
	DeleteBlogCategory(id string) error
}
