package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
)

// PublicUploadsPrefix is the fixed public path prefix under which stored item
// images are served back to clients. ImageURL values are composed from it.
const PublicUploadsPrefix = "/uploads/"

// itemService is the concrete implementation of ItemService. It validates
// catalog input, stores optional image uploads, and delegates persistence to
// the item repository.
type itemService struct {
	// itemRepository is the data-access layer for catalog items.
	itemRepository store.ItemRepository

	// imageStorage persists uploaded item images on disk.
	imageStorage store.ImageStorage

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewItemService constructs a new ItemService wired to the given repository
// and image storage.
func NewItemService(itemRepository store.ItemRepository, imageStorage store.ImageStorage, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		imageStorage:   imageStorage,
		logger:         logger,
	}
}

// CreateItem validates and persists a new catalog item.
//
// Name and Price are mandatory; a missing name or a zero price is rejected
// with ErrInvalidDataProvided before anything is written. When image is
// non-nil the file is stored first and the item's ImageURL is set to its
// public path; an image write failure aborts the whole request. A store
// insert failure after a successful image write leaves the written file in
// place — the uploads directory tolerates orphans, the catalog never
// references them.
func (s *itemService) CreateItem(ctx context.Context, item models.ShopItem, image *ItemImage) (models.ShopItem, error) {
	log := logger.FromContext(ctx)

	if item.Name == "" || item.Price == 0 {
		log.Error().Str("name", item.Name).Float64("price", item.Price).Msg("invalid item data provided")
		return models.ShopItem{}, ErrInvalidDataProvided
	}

	if image != nil {
		storedName, err := s.imageStorage.Save(ctx, image.Filename, image.Content)
		if err != nil {
			log.Err(err).Str("filename", image.Filename).Msg("image upload failed")
			return models.ShopItem{}, fmt.Errorf("image upload failed: %w", err)
		}
		item.ImageURL = PublicUploadsPrefix + storedName
	}

	createdItem, err := s.itemRepository.CreateItem(ctx, item)
	if err != nil {
		log.Err(err).Str("name", item.Name).Msg("item creation ended with error")
		return models.ShopItem{}, fmt.Errorf("item creation ended with error: %w", err)
	}

	return createdItem, nil
}

// ListItems returns one page of catalog items matching the query filter,
// plus pagination metadata derived from the total match count.
//
// Page and Limit must already be validated positive integers (the transport
// layer clamps and rejects before building the query); they are still
// checked here so a misuse of the service cannot produce a degenerate
// OFFSET. TotalPages is ceil(count/limit); CurrentPage echoes the requested
// page even when it lies beyond the last page (the item slice is then
// simply empty).
func (s *itemService) ListItems(ctx context.Context, query ListItemsQuery) (models.ItemListResponse, error) {
	log := logger.FromContext(ctx)

	if query.Page.Page < 1 || query.Page.Limit < 1 {
		log.Error().Int("page", query.Page.Page).Int("limit", query.Page.Limit).Msg("invalid pagination provided")
		return models.ItemListResponse{}, ErrInvalidDataProvided
	}
	// (page-1)*limit must fit in int, or the offset wraps negative
	if query.Page.Page-1 > (math.MaxInt-1)/query.Page.Limit {
		log.Error().Int("page", query.Page.Page).Int("limit", query.Page.Limit).Msg("pagination out of range")
		return models.ItemListResponse{}, ErrInvalidDataProvided
	}

	items, err := s.itemRepository.FindItems(ctx, query.Filter, query.Page.Limit, query.Page.Offset())
	if err != nil {
		log.Err(err).Msg("item search failed")
		return models.ItemListResponse{}, fmt.Errorf("item search failed: %w", err)
	}

	count, err := s.itemRepository.CountItems(ctx, query.Filter)
	if err != nil {
		log.Err(err).Msg("item count failed")
		return models.ItemListResponse{}, fmt.Errorf("item count failed: %w", err)
	}

	totalPages := count / int64(query.Page.Limit)
	if count%int64(query.Page.Limit) != 0 {
		totalPages++
	}

	return models.ItemListResponse{
		ShopItems:   items,
		TotalPages:  totalPages,
		CurrentPage: query.Page.Page,
	}, nil
}
