package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-shop-api/models"
)

// AuthService issues and verifies the signed, time-limited credentials that
// gate mutating catalog routes.
type AuthService interface {
	// Login verifies the supplied username/password pair and returns the
	// verified identity, or ErrInvalidCredentials on mismatch.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// CreateToken issues a signed JWT for the given identity.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemImage is an optional uploaded image accompanying an item creation
// request: the client-supplied filename plus the undecoded file content.
type ItemImage struct {
	Filename string
	Content  io.Reader
}

// ListItemsQuery bundles the validated listing parameters: pagination plus
// the optional price-range and name filters.
type ListItemsQuery struct {
	Page   models.ItemPage
	Filter models.ItemFilter
}

// ItemService implements the catalog operations: item creation with an
// optional image upload, and filtered, paginated listing.
type ItemService interface {
	// CreateItem validates and persists a new catalog item. When image is
	// non-nil its content is stored first and the item's ImageURL is set
	// to the public path of the stored file.
	CreateItem(ctx context.Context, item models.ShopItem, image *ItemImage) (models.ShopItem, error)

	// ListItems returns one page of matching items together with
	// totalPages/currentPage pagination metadata.
	ListItems(ctx context.Context, query ListItemsQuery) (models.ItemListResponse, error)
}

// CredentialVerifier checks a username/password pair and produces the
// verified identity. It exists as an interface so the single static admin
// account can later be replaced by a real user store without touching the
// auth service.
type CredentialVerifier interface {
	// Verify returns the identity matching credentials, or
	// ErrInvalidCredentials when the pair does not match any account.
	Verify(ctx context.Context, credentials models.Credentials) (models.User, error)
}
