package product

import (
	"math"
	"sort"
	"strings"

	"github.com/rewardslab/rewards-backend/constant"
	"github.com/rewardslab/rewards-backend/model"
)

type productPredicate func(*model.Product) bool

// buildPredicates returns the in-memory filter chain in its fixed evaluation
// order: gender, category, colors, price bucket, minimum rating. Absent
// criteria contribute no predicate.
func buildPredicates(criteria *model.ProductCriteria) []productPredicate {
	preds := make([]productPredicate, 0, 5)

	if len(criteria.Genders) > 0 {
		genders := criteria.Genders
		preds = append(preds, func(p *model.Product) bool {
			for _, g := range genders {
				if strings.EqualFold(p.Gender, g) {
					return true
				}
			}
			return false
		})
	}

	if criteria.Category != "" {
		category := criteria.Category
		preds = append(preds, func(p *model.Product) bool {
			for _, c := range p.Category {
				if c == category {
					return true
				}
			}
			return false
		})
	}

	if len(criteria.Colors) > 0 {
		colors := criteria.Colors
		preds = append(preds, func(p *model.Product) bool {
			for _, want := range colors {
				for _, have := range p.Colors {
					if strings.EqualFold(have, want) {
						return true
					}
				}
			}
			return false
		})
	}

	if criteria.Bucket != constant.BucketNone {
		bucket := criteria.Bucket
		preds = append(preds, func(p *model.Product) bool {
			// A record without a readable price matches no bucket.
			if p.NewPrice == nil {
				return false
			}
			return inBucket(*p.NewPrice, bucket)
		})
	}

	if criteria.MinRating != nil {
		min := *criteria.MinRating
		preds = append(preds, func(p *model.Product) bool {
			return p.Rating != nil && *p.Rating >= min
		})
	}

	return preds
}

func inBucket(price float64, bucket constant.PriceBucket) bool {
	switch bucket {
	case constant.BucketBelow25:
		return price < constant.PriceBucketLow
	case constant.Bucket25To75:
		return price >= constant.PriceBucketLow && price <= constant.PriceBucketHigh
	case constant.BucketAbove75:
		return price > constant.PriceBucketHigh
	}
	return true
}

func applyFilters(items []model.Product, criteria *model.ProductCriteria) []model.Product {
	preds := buildPredicates(criteria)
	if len(preds) == 0 {
		return items
	}

	out := make([]model.Product, 0, len(items))
	for i := range items {
		keep := true
		for _, pred := range preds {
			if !pred(&items[i]) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, items[i])
		}
	}
	return out
}

// sortByPrice orders records by price. Records without a readable price sort
// as positive infinity: last in ascending order, first in descending.
func sortByPrice(items []model.Product, order constant.SortOrder) {
	if order == constant.SortNone {
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := sortPrice(&items[i]), sortPrice(&items[j])
		if order == constant.SortPriceDesc {
			return a > b
		}
		return a < b
	})
}

func sortPrice(p *model.Product) float64 {
	if p.NewPrice == nil {
		return math.Inf(1)
	}
	return *p.NewPrice
}

// paginate slices the window for the requested page. The page number is
// clamped into [1, totalPages]; totalPages has a floor of 1 so an empty
// result still reports page 1 of 1.
func paginate(items []model.Product, page, pageSize int) (window []model.Product, total, totalPages, current int) {
	total = len(items)
	totalPages = (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	current = page
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	start := (current - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return items[start:end], total, totalPages, current
}
