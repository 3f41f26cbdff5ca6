package product

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rewardslab/rewards-backend/constant"
	"github.com/rewardslab/rewards-backend/model"
	"github.com/rewardslab/rewards-backend/utils/errors"
	"github.com/rewardslab/rewards-backend/utils/logger"
	"go.uber.org/zap"
)

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

func (s *productAppImpl) CreateProduct(ctx context.Context, username string, req *model.CreateProductRequest) (*model.CreateProductResponse, error) {
	if s.cfg.Aws.ProductsTable == "" || s.cfg.Aws.PicturesBucket == "" {
		return nil, errors.SetCustomError(constant.ErrServerConfig)
	}

	uetr := uuid.NewString()

	image, err := decodeImagePayload(req.ImageBase64)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	fileName := req.FileName
	if fileName == "" {
		fileName = fmt.Sprintf("product-%s.bin", uetr)
	}
	safeName := unsafeFileNameChars.ReplaceAllString(fileName, "-")
	key := fmt.Sprintf("products/%s-%s", uetr, safeName)

	if err := s.pictures.Upload(ctx, key, image, "application/octet-stream"); err != nil {
		logger.Error("[CreateProduct] error pictures.Upload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	imageURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.cfg.Aws.PicturesBucket, url.PathEscape(key))

	newPrice := coerceFloat(req.NewPrice, 0)
	record := &model.Product{
		UETR:        uetr,
		ProductName: req.ProductName,
		NewPrice:    &newPrice,
		Gender:      req.Gender,
		Category:    coerceStringList(req.Category),
		Colors:      coerceStringList(req.Colors),
		OnSale:      coerceBool(req.OnSale),
		ImageURL:    imageURL,
		ImageKey:    key,
		CreatedBy:   username,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if req.OldPrice != nil {
		oldPrice := coerceFloat(req.OldPrice, 0)
		record.OldPrice = &oldPrice
	}
	if req.Rating != nil {
		rating := coerceFloat(req.Rating, 0)
		record.Rating = &rating
	}

	if err := s.productRepo.Put(ctx, record); err != nil {
		logger.Error("[CreateProduct] error productRepo.Put", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CreateProductResponse{
		UETR:     uetr,
		ImageURL: imageURL,
		Message:  "Product created successfully",
	}, nil
}

// decodeImagePayload accepts both bare base64 and data URLs; for the latter,
// everything up to the last comma is the media-type prefix.
func decodeImagePayload(raw string) ([]byte, error) {
	if i := strings.LastIndex(raw, ","); i >= 0 {
		raw = raw[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	return data, nil
}
