package product

import (
	"testing"

	"github.com/rewardslab/rewards-backend/constant"
	"github.com/rewardslab/rewards-backend/model"
	"github.com/stretchr/testify/assert"
)

func price(v float64) *float64 { return &v }

func TestApplyFilters(t *testing.T) {
	items := []model.Product{
		{UETR: "a", Gender: "Men", Category: []string{"shoes"}, Colors: []string{"Red"}, NewPrice: price(10), Rating: price(4.5)},
		{UETR: "b", Gender: "women", Category: []string{"shoes", "sale"}, Colors: []string{"blue"}, NewPrice: price(50), Rating: price(3)},
		{UETR: "c", Gender: "men", Category: []string{"shirts"}, Colors: []string{"red", "green"}, NewPrice: price(90)},
		{UETR: "d", Gender: "men", Category: []string{"shoes"}, Colors: []string{"red"}},
	}

	tests := []struct {
		name     string
		criteria model.ProductCriteria
		want     []string
	}{
		{
			name:     "no criteria keeps everything",
			criteria: model.ProductCriteria{},
			want:     []string{"a", "b", "c", "d"},
		},
		{
			name:     "gender matches case insensitively",
			criteria: model.ProductCriteria{Genders: []string{"MEN"}},
			want:     []string{"a", "c", "d"},
		},
		{
			name:     "category requires exact membership",
			criteria: model.ProductCriteria{Category: "shoes"},
			want:     []string{"a", "b", "d"},
		},
		{
			name:     "colors match any requested against any stored",
			criteria: model.ProductCriteria{Colors: []string{"green", "blue"}},
			want:     []string{"b", "c"},
		},
		{
			name:     "bucket excludes records without a readable price",
			criteria: model.ProductCriteria{Bucket: constant.BucketBelow25},
			want:     []string{"a"},
		},
		{
			name:     "rating excludes records without a rating",
			criteria: model.ProductCriteria{MinRating: price(3)},
			want:     []string{"a", "b"},
		},
		{
			name: "all criteria combine with AND",
			criteria: model.ProductCriteria{
				Genders:   []string{"men"},
				Category:  "shoes",
				Colors:    []string{"red"},
				Bucket:    constant.BucketBelow25,
				MinRating: price(4),
			},
			want: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyFilters(items, &tt.criteria)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.UETR)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestInBucket_Boundaries(t *testing.T) {
	// 25 and 75 both land in the middle bucket
	assert.True(t, inBucket(24.99, constant.BucketBelow25))
	assert.False(t, inBucket(25, constant.BucketBelow25))
	assert.True(t, inBucket(25, constant.Bucket25To75))
	assert.True(t, inBucket(75, constant.Bucket25To75))
	assert.False(t, inBucket(75, constant.BucketAbove75))
	assert.True(t, inBucket(75.01, constant.BucketAbove75))
}

func TestSortByPrice(t *testing.T) {
	build := func() []model.Product {
		return []model.Product{
			{UETR: "mid", NewPrice: price(50)},
			{UETR: "nil"},
			{UETR: "low", NewPrice: price(10)},
			{UETR: "high", NewPrice: price(90)},
		}
	}

	order := func(items []model.Product) []string {
		ids := make([]string, 0, len(items))
		for _, p := range items {
			ids = append(ids, p.UETR)
		}
		return ids
	}

	asc := build()
	sortByPrice(asc, constant.SortPriceAsc)
	assert.Equal(t, []string{"low", "mid", "high", "nil"}, order(asc))

	desc := build()
	sortByPrice(desc, constant.SortPriceDesc)
	assert.Equal(t, []string{"nil", "high", "mid", "low"}, order(desc))

	untouched := build()
	sortByPrice(untouched, constant.SortNone)
	assert.Equal(t, []string{"mid", "nil", "low", "high"}, order(untouched))
}

func TestPaginate(t *testing.T) {
	items := make([]model.Product, 5)
	for i := range items {
		items[i].UETR = string(rune('a' + i))
	}

	tests := []struct {
		name        string
		page        int
		pageSize    int
		wantIDs     []string
		wantTotal   int
		wantPages   int
		wantCurrent int
	}{
		{"first page", 1, 2, []string{"a", "b"}, 5, 3, 1},
		{"last partial page", 3, 2, []string{"e"}, 5, 3, 3},
		{"page beyond range clamps to last", 9, 2, []string{"e"}, 5, 3, 3},
		{"page size covering everything", 1, 100, []string{"a", "b", "c", "d", "e"}, 5, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, total, totalPages, current := paginate(items, tt.page, tt.pageSize)
			ids := make([]string, 0, len(window))
			for _, p := range window {
				ids = append(ids, p.UETR)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantPages, totalPages)
			assert.Equal(t, tt.wantCurrent, current)
		})
	}

	window, total, totalPages, current := paginate(nil, 1, 20)
	assert.Empty(t, window)
	assert.Equal(t, 0, total)
	assert.Equal(t, 1, totalPages)
	assert.Equal(t, 1, current)
}

func TestImageKeyFromURL(t *testing.T) {
	assert.Equal(t, "products/abc-shoe.png",
		imageKeyFromURL("https://bucket.s3.amazonaws.com/products/abc-shoe.png"))
	assert.Equal(t, "products/abc shoe.png",
		imageKeyFromURL("https://bucket.s3.amazonaws.com/products%2Fabc%20shoe.png"))
	assert.Equal(t, "", imageKeyFromURL(""))
	assert.Equal(t, "", imageKeyFromURL("https://bucket.s3.amazonaws.com/"))
}
