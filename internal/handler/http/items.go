package http

import (
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

const (
	// maxUploadMemory bounds the in-memory part of multipart parsing;
	// larger file parts spill to temporary files.
	maxUploadMemory = 32 << 20

	// imageFormField is the multipart field carrying the optional item image.
	imageFormField = "image"

	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	maxPage      = 1_000_000
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Err(err).Str("func", "*Handler.createItem").Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	priceStr := r.FormValue("price")
	if name == "" || priceStr == "" {
		log.Warn().Str("func", "*Handler.createItem").Msg("name and price are required")
		http.Error(w, "name and price are required", http.StatusBadRequest)
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		log.Err(err).Str("price", priceStr).Msg("price must be a number")
		http.Error(w, "price must be a number", http.StatusBadRequest)
		return
	}

	item := models.ShopItem{
		Name:        name,
		Price:       price,
		Description: r.FormValue("description"),
	}

	var image *service.ItemImage
	file, fileHeader, err := r.FormFile(imageFormField)
	switch {
	case err == nil:
		defer file.Close()
		image = &service.ItemImage{
			Filename: fileHeader.Filename,
			Content:  file,
		}
	case errors.Is(err, http.ErrMissingFile):
		// image is optional
	default:
		log.Err(err).Str("func", "*Handler.createItem").Msg("invalid image upload")
		http.Error(w, "invalid image upload", http.StatusBadRequest)
		return
	}

	createdItem, err := h.services.ItemService.CreateItem(ctx, item, image)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid item data provided")
			http.Error(w, "invalid item data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during item creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, createdItem, http.StatusCreated)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query, err := parseListQuery(r.URL.Query())
	if err != nil {
		log.Err(err).Str("query", r.URL.RawQuery).Msg("invalid list query")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.services.ItemService.ListItems(ctx, query)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid list parameters")
			http.Error(w, "invalid list parameters", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during item listing")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// parseListQuery validates the listing query parameters.
//
// page and limit must parse as positive integers when present; limit is
// capped at maxLimit, page is rejected above maxPage so the resulting
// offset can never overflow. minPrice and maxPrice must parse as finite
// floats when present. Any malformed value is rejected rather than
// silently replaced.
func parseListQuery(values url.Values) (service.ListItemsQuery, error) {
	page, err := positiveIntParam(values, "page", defaultPage, maxPage)
	if err != nil {
		return service.ListItemsQuery{}, err
	}

	limit, err := positiveIntParam(values, "limit", defaultLimit, 0)
	if err != nil {
		return service.ListItemsQuery{}, err
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var filter models.ItemFilter
	if minPriceStr := values.Get("minPrice"); minPriceStr != "" {
		minPrice, err := finiteFloatParam(minPriceStr, "minPrice")
		if err != nil {
			return service.ListItemsQuery{}, err
		}
		filter.MinPrice = &minPrice
	}
	if maxPriceStr := values.Get("maxPrice"); maxPriceStr != "" {
		maxPrice, err := finiteFloatParam(maxPriceStr, "maxPrice")
		if err != nil {
			return service.ListItemsQuery{}, err
		}
		filter.MaxPrice = &maxPrice
	}
	filter.Name = values.Get("name")

	return service.ListItemsQuery{
		Page:   models.ItemPage{Page: page, Limit: limit},
		Filter: filter,
	}, nil
}

// positiveIntParam parses a positive integer query parameter. A max of zero
// means unbounded.
func positiveIntParam(values url.Values, key string, fallback, max int) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 {
		return 0, errors.New(key + " must be a positive integer")
	}
	if max > 0 && parsed > max {
		return 0, errors.New(key + " is out of range")
	}

	return parsed, nil
}

// finiteFloatParam parses a float query parameter, rejecting NaN and the
// infinities that strconv.ParseFloat otherwise accepts.
func finiteFloatParam(raw, key string) (float64, error) {
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, errors.New(key + " must be a number")
	}

	return parsed, nil
}
