package product

import (
	"math"
	"strconv"
	"strings"

	"github.com/rewardslab/rewards-backend/constant"
	"github.com/rewardslab/rewards-backend/model"
)

// normalizeCriteria turns raw query parameters into typed criteria. It never
// fails: malformed values degrade to "filter not applied" or a default.
func normalizeCriteria(req *model.ListProductsRequest) *model.ProductCriteria {
	return &model.ProductCriteria{
		Genders:   splitList(req.Gender),
		Category:  strings.TrimSpace(req.Category),
		Colors:    splitList(req.Colors),
		Bucket:    parseBucket(req.Price),
		MinRating: parseNumber(req.Rating),
		Sort:      parseSort(req.Sort),
		Page:      parsePage(req.Page),
		PageSize:  parsePageSize(req.PageSize),
		Cursor:    req.Cursor,
	}
}

// splitList returns nil for absent/empty input: nil means "no filter", while
// an empty set would mean "match nothing".
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseBucket(raw string) constant.PriceBucket {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "below25", "lt25", "<25", "under25":
		return constant.BucketBelow25
	case "25to75", "25-75", "between25and75", "mid":
		return constant.Bucket25To75
	case "above75", "gt75", ">75", "over75":
		return constant.BucketAbove75
	}
	return constant.BucketNone
}

func parseSort(raw string) constant.SortOrder {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "asc", "price_asc", "price:asc", "priceasc":
		return constant.SortPriceAsc
	case "desc", "price_desc", "price:desc", "pricedesc":
		return constant.SortPriceDesc
	}
	return constant.SortNone
}

func parseNumber(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

func parsePage(raw string) int {
	n := parseNumber(raw)
	if n == nil || *n < 1 {
		return 1
	}
	return int(*n)
}

func parsePageSize(raw string) int {
	n := parseNumber(raw)
	if n == nil {
		return constant.DefaultPageSize
	}
	size := int(*n)
	if size < 1 {
		return 1
	}
	if size > constant.MaxPageSize {
		return constant.MaxPageSize
	}
	return size
}
