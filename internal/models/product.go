package models

import "time"

// Product is the catalog aggregate root. CategoryID and BrandID are
// application-enforced references (no DB foreign keys in the sqlite schema).
// CostPerItem is internal margin data and is never serialized to customers;
// admin responses expose it explicitly.
type Product struct {
	ID                       string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name                     string    `json:"name" gorm:"type:varchar(255)" validate:"required,min=3,max=255"`
	Slug                     string    `json:"slug" gorm:"uniqueIndex;type:varchar(255)"`
	SKU                      string    `json:"sku" gorm:"uniqueIndex;type:varchar(64)"`
	Description              string    `json:"description" gorm:"type:text" validate:"omitempty,max=5000"`
	Price                    float64   `json:"price" validate:"required,gt=0"`
	ComparePrice             *float64  `json:"compare_price" validate:"omitempty,gt=0"`
	CostPerItem              *float64  `json:"-"`
	CategoryID               string    `json:"category_id" gorm:"index;type:varchar(36)"`
	BrandID                  string    `json:"brand_id" gorm:"index;type:varchar(36)"`
	InventoryQuantity        int       `json:"inventory_quantity" validate:"gte=0"`
	IsAvailable              bool      `json:"is_available"`
	AllowOutOfStockPurchases bool      `json:"allow_out_of_stock_purchases"`
	Weight                   *float64  `json:"weight"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`

	Images   []ProductImage  `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	Options  []ProductOption `json:"options,omitempty" gorm:"foreignKey:ProductID"`
	Variants []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID"`
}

// IsPurchasable reports whether the product itself can currently be sold.
// Variant-level stock, when a variant tracks its own inventory, takes
// precedence; see ProductVariant.IsPurchasable.
func (p *Product) IsPurchasable() bool {
	return p.IsAvailable && (p.InventoryQuantity > 0 || p.AllowOutOfStockPurchases)
}

// ProductImage is gallery media. OptionValueID links an image to a specific
// option value (e.g. the "Red" swatch); nil means a generic image. SortOrder
// is caller-maintained and not compacted on delete.
type ProductImage struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID     string    `json:"product_id" gorm:"index;type:varchar(36)"`
	URL           string    `json:"url" gorm:"type:varchar(512)" validate:"required"`
	AltText       string    `json:"alt_text" gorm:"type:varchar(255)"`
	OptionValueID *string   `json:"option_value_id" gorm:"type:varchar(36)"`
	IsPrimary     bool      `json:"is_primary"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProductOption declares a configurable axis such as Size or Color.
type ProductOption struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"index;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Values []ProductOptionValue `json:"values,omitempty" gorm:"foreignKey:OptionID"`
}

// ProductOptionValue is one choice within an option. Hex is populated only
// for color-typed options.
type ProductOptionValue struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OptionID  string    `json:"option_id" gorm:"index;type:varchar(36)"`
	Value     string    `json:"value" gorm:"type:varchar(100)" validate:"required"`
	Hex       *string   `json:"hex" gorm:"type:varchar(7)"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductVariant is a concrete sellable combination of option values. Nil
// override fields inherit from the parent product on the read path; nothing
// is stored redundantly.
type ProductVariant struct {
	ID                string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID         string    `json:"product_id" gorm:"index;type:varchar(36)"`
	SKU               string    `json:"sku" gorm:"uniqueIndex;type:varchar(64)"`
	Price             *float64  `json:"price"`
	ComparePrice      *float64  `json:"compare_price"`
	CostPerItem       *float64  `json:"-"`
	Weight            *float64  `json:"weight"`
	InventoryQuantity *int      `json:"inventory_quantity"`
	IsAvailable       *bool     `json:"is_available"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	OptionValues []ProductVariantOptionValue `json:"option_values,omitempty" gorm:"foreignKey:VariantID"`
}

// EffectivePrice resolves the variant price, falling back to the parent.
func (v *ProductVariant) EffectivePrice(parent *Product) float64 {
	if v.Price != nil {
		return *v.Price
	}
	return parent.Price
}

// IsPurchasable applies the purchasability predicate with variant overrides:
// variant inventory, when tracked, takes precedence over the parent's.
func (v *ProductVariant) IsPurchasable(parent *Product) bool {
	available := parent.IsAvailable
	if v.IsAvailable != nil {
		available = *v.IsAvailable
	}
	qty := parent.InventoryQuantity
	if v.InventoryQuantity != nil {
		qty = *v.InventoryQuantity
	}
	return available && (qty > 0 || parent.AllowOutOfStockPurchases)
}

// ProductVariantOptionValue is a pure join row, one per (variant, value).
type ProductVariantOptionValue struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VariantID     string    `json:"variant_id" gorm:"index;type:varchar(36)"`
	OptionValueID string    `json:"option_value_id" gorm:"index;type:varchar(36)"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
