package product

import (
	"testing"

	"github.com/rewardslab/rewards-backend/constant"
	"github.com/rewardslab/rewards-backend/model"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeCriteria_Lists(t *testing.T) {
	tests := []struct {
		name string
		req  model.ListProductsRequest
		want *model.ProductCriteria
	}{
		{
			name: "empty request yields no filters and defaults",
			req:  model.ListProductsRequest{},
			want: &model.ProductCriteria{
				Page:     1,
				PageSize: constant.DefaultPageSize,
			},
		},
		{
			name: "comma lists are split, trimmed and empty tokens dropped",
			req:  model.ListProductsRequest{Gender: " men , women ,", Colors: "Red,,blue "},
			want: &model.ProductCriteria{
				Genders:  []string{"men", "women"},
				Colors:   []string{"Red", "blue"},
				Page:     1,
				PageSize: constant.DefaultPageSize,
			},
		},
		{
			name: "category is a single trimmed string, never split",
			req:  model.ListProductsRequest{Category: " shoes,boots "},
			want: &model.ProductCriteria{
				Category: "shoes,boots",
				Page:     1,
				PageSize: constant.DefaultPageSize,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeCriteria(&tt.req))
		})
	}
}

func TestParseBucket(t *testing.T) {
	tests := []struct {
		raw  string
		want constant.PriceBucket
	}{
		{"below25", constant.BucketBelow25},
		{"LT25", constant.BucketBelow25},
		{"<25", constant.BucketBelow25},
		{"25to75", constant.Bucket25To75},
		{"25-75", constant.Bucket25To75},
		{"MID", constant.Bucket25To75},
		{"above75", constant.BucketAbove75},
		{">75", constant.BucketAbove75},
		{"gt75", constant.BucketAbove75},
		{"", constant.BucketNone},
		{"cheap", constant.BucketNone},
		{"below", constant.BucketNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseBucket(tt.raw), "raw=%q", tt.raw)
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		raw  string
		want constant.SortOrder
	}{
		{"asc", constant.SortPriceAsc},
		{"price_asc", constant.SortPriceAsc},
		{"Price:ASC", constant.SortPriceAsc},
		{"desc", constant.SortPriceDesc},
		{"price_desc", constant.SortPriceDesc},
		{"price:desc", constant.SortPriceDesc},
		{"", constant.SortNone},
		{"name", constant.SortNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSort(tt.raw), "raw=%q", tt.raw)
	}
}

func TestParsePageAndPageSize(t *testing.T) {
	// page clamps to a minimum of 1
	assert.Equal(t, 1, parsePage(""))
	assert.Equal(t, 1, parsePage("abc"))
	assert.Equal(t, 1, parsePage("0"))
	assert.Equal(t, 1, parsePage("-3"))
	assert.Equal(t, 7, parsePage("7"))

	// pageSize: default on absent/invalid, clamp into [1,100]
	assert.Equal(t, constant.DefaultPageSize, parsePageSize(""))
	assert.Equal(t, constant.DefaultPageSize, parsePageSize("NaN"))
	assert.Equal(t, 1, parsePageSize("0"))
	assert.Equal(t, 1, parsePageSize("-5"))
	assert.Equal(t, constant.MaxPageSize, parsePageSize("9999"))
	assert.Equal(t, 50, parsePageSize("50"))
}

func TestParseNumber_NonFinite(t *testing.T) {
	assert.Nil(t, parseNumber("Inf"))
	assert.Nil(t, parseNumber("-Inf"))
	assert.Nil(t, parseNumber("NaN"))
	assert.Nil(t, parseNumber("4.5.6"))

	n := parseNumber("4.5")
	if assert.NotNil(t, n) {
		assert.Equal(t, 4.5, *n)
	}
}
