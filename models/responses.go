package models

// ItemListResponse is the JSON body returned by the catalog listing endpoint.
type ItemListResponse struct {
	// ShopItems is the page of matching items in store-default
	// (insertion) order.
	ShopItems []ShopItem `json:"shopItems"`

	// TotalPages is ceil(total matching items / page size).
	TotalPages int64 `json:"totalPages"`

	// CurrentPage echoes the validated page number of this response.
	CurrentPage int `json:"currentPage"`
}

// LoginResponse is the JSON body returned on successful login.
type LoginResponse struct {
	// Token is the compact signed JWT to present in the "Authorization"
	// header of subsequent requests.
	Token string `json:"token"`
}
