package models

import "time"

// Collection is a curated merchandising set of products. IsPublished gates
// storefront visibility; drafts are admin-only.
type Collection struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(512)"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Products []CollectionProduct `json:"products,omitempty" gorm:"foreignKey:CollectionID"`
}

// CollectionProduct orders a product within a collection. SortOrder is
// caller-maintained. Rows have no lifecycle of their own: deleting the
// collection deletes them.
type CollectionProduct struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CollectionID string    `json:"collection_id" gorm:"index;type:varchar(36)"`
	ProductID    string    `json:"product_id" gorm:"index;type:varchar(36)"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BlogPost is editorial content. Customers see a post only when IsPublished
// is set and PublishedAt is in the past.
type BlogPost struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string     `json:"title" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	Excerpt     string     `json:"excerpt" gorm:"type:text"`
	Body        string     `json:"body" gorm:"type:text"`
	CoverURL    string     `json:"cover_url" gorm:"type:varchar(512)"`
	AuthorID    string     `json:"author_id" gorm:"type:varchar(36)"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Visible reports whether the post is live for customers at the given time.
func (p *BlogPost) Visible(now time.Time) bool {
	return p.IsPublished && p.PublishedAt != nil && !p.PublishedAt.After(now)
}

// BlogCategory tags posts.
type BlogCategory struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255)" validate:"required,min=2,max=255"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogPostCategory is the many-to-many join between posts and categories.
// Like CollectionProduct, join rows are deleted with their parent post.
type BlogPostCategory struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PostID     string    `json:"post_id" gorm:"index;type:varchar(36)"`
	CategoryID string    `json:"category_id" gorm:"index;type:varchar(36)"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
