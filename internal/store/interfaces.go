package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-shop-api/models"
)

// ItemRepository is the persistence contract for catalog items.
type ItemRepository interface {
	// CreateItem inserts a new item and returns it with store-assigned
	// fields (ItemID, CreatedAt) populated.
	CreateItem(ctx context.Context, item models.ShopItem) (models.ShopItem, error)

	// FindItems returns the page of items matching filter, in
	// store-default (insertion) order.
	FindItems(ctx context.Context, filter models.ItemFilter, limit, offset int) ([]models.ShopItem, error)

	// CountItems returns the total number of items matching filter.
	CountItems(ctx context.Context, filter models.ItemFilter) (int64, error)
}

// ImageStorage persists uploaded item images on a local filesystem and
// reports the collision-resistant name each file was stored under.
type ImageStorage interface {
	// Save writes content to disk under a name derived from
	// originalFilename and returns that stored name.
	Save(ctx context.Context, originalFilename string, content io.Reader) (string, error)

	// Dir returns the directory images are stored in, for read-only
	// static serving.
	Dir() string
}
