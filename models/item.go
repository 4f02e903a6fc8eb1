package models

import "time"

// ShopItem is one catalog entry managed by the shop API.
//
// Name and Price are mandatory and validated at the service layer before the
// item ever reaches the store. ImageURL is set once at creation time when an
// image was uploaded with the item and never mutated afterward; when no image
// was uploaded the field is omitted from JSON entirely.
type ShopItem struct {
	// ItemID is the store-assigned identifier. Immutable after insert.
	ItemID int64 `json:"id"`

	// Name is the display name of the item. Required, non-empty.
	Name string `json:"name"`

	// Price is the item price. Required. Also used as the range-filter
	// field for catalog listings.
	Price float64 `json:"price"`

	// Description is optional free-form text.
	Description string `json:"description,omitempty"`

	// ImageURL is the public path of the uploaded image
	// (e.g. "/uploads/1700000000000-widget.png"), if any.
	ImageURL string `json:"imageUrl,omitempty"`

	// CreatedAt is the timestamp assigned by the store on insert.
	// Not exposed via JSON.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the ShopItem model.
func (i ShopItem) TableName() string {
	return "shop_items"
}

// ItemFilter describes the optional listing filters for catalog queries.
// Zero-valued fields are ignored when the query is built.
type ItemFilter struct {
	// MinPrice, when non-nil, keeps only items with price >= *MinPrice.
	MinPrice *float64

	// MaxPrice, when non-nil, keeps only items with price <= *MaxPrice.
	// Combinable with MinPrice.
	MaxPrice *float64

	// Name, when non-empty, keeps only items whose name contains the
	// given substring, matched case-insensitively.
	Name string
}

// ItemPage bundles validated pagination parameters for catalog listings.
type ItemPage struct {
	// Page is the 1-based page number.
	Page int

	// Limit is the page size.
	Limit int
}

// Offset returns the number of records to skip for the page.
func (p ItemPage) Offset() int {
	return (p.Page - 1) * p.Limit
}
