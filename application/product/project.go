package product

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/rewardslab/rewards-backend/model"
	"github.com/rewardslab/rewards-backend/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	signedURLTTL    = time.Hour
	signingParallel = 10
)

// signImages resolves a presigned download URL for every item in the page,
// fanning out one signing call per item and joining before returning. A
// signing failure leaves that item's imageUrl as stored; it never fails the
// listing. Slice order is preserved.
func (s *productAppImpl) signImages(ctx context.Context, items []model.Product) []model.Product {
	g := new(errgroup.Group)
	g.SetLimit(signingParallel)

	for i := range items {
		i := i
		g.Go(func() error {
			key := items[i].ImageKey
			if key == "" {
				key = imageKeyFromURL(items[i].ImageURL)
			}
			if key == "" {
				return nil
			}

			signed, err := s.pictures.SignedURL(ctx, key, signedURLTTL)
			if err != nil {
				logger.Warn("[signImages] error signing image url",
					zap.String("uetr", items[i].UETR), zap.String("key", key), zap.Error(err))
				return nil
			}
			items[i].ImageURL = signed
			return nil
		})
	}

	_ = g.Wait()
	return items
}

// imageKeyFromURL derives an object key from a stored full URL by decoding
// its path component. Returns "" when nothing usable can be extracted.
func imageKeyFromURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	path := strings.TrimPrefix(u.Path, "/")
	if path == "" {
		return ""
	}
	decoded, err := url.PathUnescape(path)
	if err != nil {
		return path
	}
	return decoded
}
