package model

import "github.com/rewardslab/rewards-backend/constant"

// Product is the persisted product record. Price and rating use pointers
// because the stored attribute may be absent or unreadable; a nil value means
// "not present" on the read side.
type Product struct {
	UETR        string   `json:"uetr"`
	ProductName string   `json:"productName"`
	NewPrice    *float64 `json:"newPrice,omitempty"`
	OldPrice    *float64 `json:"oldPrice,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Category    []string `json:"category"`
	Colors      []string `json:"colors"`
	Rating      *float64 `json:"rating,omitempty"`
	OnSale      bool     `json:"onSale"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	ImageKey    string   `json:"-"`
	CreatedBy   string   `json:"createdBy,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// ListProductsRequest carries the raw string query parameters exactly as
// received. Normalization into ProductCriteria never fails.
type ListProductsRequest struct {
	Gender   string
	Category string
	Colors   string
	Price    string
	Rating   string
	Sort     string
	Page     string
	PageSize string
	Cursor   string
}

// ProductCriteria is the normalized, request-scoped filter/sort/page state.
type ProductCriteria struct {
	Genders   []string
	Category  string
	Colors    []string
	Bucket    constant.PriceBucket
	MinRating *float64
	Sort      constant.SortOrder
	Page      int
	PageSize  int
	Cursor    string
}

// ProductPage is one page from the price-index query path.
type ProductPage struct {
	Items      []Product
	NextCursor string
	HasNext    bool
}

// Pagination is a tagged union: the cursor mode carries NextCursor/HasNext
// only, the offset mode carries Total/TotalPages/Page. The two paths have
// different guarantees (the cursor path has no total count) so the shapes are
// deliberately not unified.
type Pagination struct {
	Mode       string  `json:"mode"`
	PageSize   int     `json:"pageSize"`
	HasNext    bool    `json:"hasNext"`
	NextCursor *string `json:"nextCursor,omitempty"`
	Total      *int    `json:"total,omitempty"`
	TotalPages *int    `json:"totalPages,omitempty"`
	Page       *int    `json:"page,omitempty"`
}

// AppliedFilters echoes the normalized criteria back to the caller; unset
// criteria marshal as null.
type AppliedFilters struct {
	Gender   []string `json:"gender"`
	Category *string  `json:"category"`
	Colors   []string `json:"colors"`
	Price    *string  `json:"price"`
	Rating   *float64 `json:"rating"`
	Sort     *string  `json:"sort"`
}

type ProductListResponse struct {
	Items          []Product      `json:"items"`
	Pagination     Pagination     `json:"pagination"`
	AppliedFilters AppliedFilters `json:"appliedFilters"`
}

// CreateProductRequest tolerates clients sending numerics as strings and
// category/colors as either arrays or comma-separated strings; the application
// layer coerces them.
type CreateProductRequest struct {
	ProductName string `json:"productName" validate:"required"`
	NewPrice    any    `json:"newPrice"`
	OldPrice    any    `json:"oldPrice"`
	Gender      string `json:"gender"`
	Category    any    `json:"category"`
	Colors      any    `json:"colors"`
	Rating      any    `json:"rating"`
	OnSale      any    `json:"onSale"`
	ImageBase64 string `json:"imageBase64" validate:"required"`
	FileName    string `json:"fileName"`
}

type CreateProductResponse struct {
	UETR     string `json:"uetr"`
	ImageURL string `json:"imageUrl"`
	Message  string `json:"message"`
}
