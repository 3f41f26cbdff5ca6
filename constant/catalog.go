package constant

// PriceBucket is one of three mutually exclusive coarse price ranges.
type PriceBucket int

const (
	BucketNone PriceBucket = iota
	BucketBelow25
	Bucket25To75
	BucketAbove75
)

func (b PriceBucket) String() string {
	switch b {
	case BucketBelow25:
		return "below25"
	case Bucket25To75:
		return "25to75"
	case BucketAbove75:
		return "above75"
	}
	return ""
}

type SortOrder int

const (
	SortNone SortOrder = iota
	SortPriceAsc
	SortPriceDesc
)

func (s SortOrder) String() string {
	switch s {
	case SortPriceAsc:
		return "price_asc"
	case SortPriceDesc:
		return "price_desc"
	}
	return ""
}

const (
	// Price bucket thresholds, in the store currency.
	PriceBucketLow  = 25.0
	PriceBucketHigh = 75.0

	DefaultPageSize = 20
	MaxPageSize     = 100
)

const (
	PaginationModeCursor = "cursor"
	PaginationModeOffset = "offset"
)
