package product

import (
	"context"

	"github.com/rewardslab/rewards-backend/cmd/config"
	"github.com/rewardslab/rewards-backend/constant"
	"github.com/rewardslab/rewards-backend/model"
	productRepo "github.com/rewardslab/rewards-backend/repository/product"
	storageRepo "github.com/rewardslab/rewards-backend/repository/storage"
	"github.com/rewardslab/rewards-backend/utils/errors"
	"github.com/rewardslab/rewards-backend/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context, req *model.ListProductsRequest) (*model.ProductListResponse, error)
	CreateProduct(ctx context.Context, username string, req *model.CreateProductRequest) (*model.CreateProductResponse, error)
}

type productAppImpl struct {
	cfg         *config.Config
	productRepo productRepo.ProductRepository
	pictures    storageRepo.StorageRepository
}

func NewProductApp(cfg *config.Config, productRepo productRepo.ProductRepository, pictures storageRepo.StorageRepository) ProductApp {
	return &productAppImpl{
		cfg:         cfg,
		productRepo: productRepo,
		pictures:    pictures,
	}
}

// ListProducts runs the listing query engine: normalize the raw parameters,
// try the price-index query, and on any index failure fall back to a full
// scan with in-memory filter/sort/pagination. Index failures never surface to
// the caller; only a failed fallback scan does.
func (s *productAppImpl) ListProducts(ctx context.Context, req *model.ListProductsRequest) (*model.ProductListResponse, error) {
	if s.cfg.Aws.ProductsTable == "" || s.cfg.Aws.PicturesBucket == "" {
		return nil, errors.SetCustomError(constant.ErrServerConfig)
	}

	criteria := normalizeCriteria(req)

	page, err := s.productRepo.QueryByPrice(ctx, criteria)
	if err == nil {
		items := s.signImages(ctx, page.Items)
		return &model.ProductListResponse{
			Items:          items,
			Pagination:     cursorPagination(criteria, page),
			AppliedFilters: appliedFilters(criteria),
		}, nil
	}

	logger.Warn("[ListProducts] price index query failed, falling back to scan",
		zap.String("index", s.cfg.Aws.PriceIndex), zap.Error(err))

	all, err := s.productRepo.ScanAll(ctx)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.ScanAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	filtered := applyFilters(all, criteria)
	sortByPrice(filtered, criteria.Sort)
	window, total, totalPages, pageNum := paginate(filtered, criteria.Page, criteria.PageSize)

	items := s.signImages(ctx, window)

	return &model.ProductListResponse{
		Items: items,
		Pagination: model.Pagination{
			Mode:       constant.PaginationModeOffset,
			PageSize:   criteria.PageSize,
			HasNext:    pageNum < totalPages,
			Total:      &total,
			TotalPages: &totalPages,
			Page:       &pageNum,
		},
		AppliedFilters: appliedFilters(criteria),
	}, nil
}

func cursorPagination(criteria *model.ProductCriteria, page *model.ProductPage) model.Pagination {
	p := model.Pagination{
		Mode:     constant.PaginationModeCursor,
		PageSize: criteria.PageSize,
		HasNext:  page.HasNext,
	}
	if page.NextCursor != "" {
		cursor := page.NextCursor
		p.NextCursor = &cursor
	}
	return p
}

func appliedFilters(criteria *model.ProductCriteria) model.AppliedFilters {
	f := model.AppliedFilters{
		Gender: criteria.Genders,
		Colors: criteria.Colors,
		Rating: criteria.MinRating,
	}
	if criteria.Category != "" {
		category := criteria.Category
		f.Category = &category
	}
	if criteria.Bucket != constant.BucketNone {
		bucket := criteria.Bucket.String()
		f.Price = &bucket
	}
	if criteria.Sort != constant.SortNone {
		sort := criteria.Sort.String()
		f.Sort = &sort
	}
	return f
}
