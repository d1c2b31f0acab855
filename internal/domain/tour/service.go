package tour

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/roamio/roamio-api/internal/pkg/logger"
)

const catalogCacheKey = "tours:catalog"

// Service handles catalog reads and filtered search
type Service struct {
	repo     Repository
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewService creates tour service. cache may be nil; the service then
// reads straight from the repository.
func NewService(repo Repository, cache *redis.Client, cacheTTL time.Duration) *Service {
	return &Service{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// Catalog returns the full tour catalog, served from the redis cache when
// possible. Cache failures are logged and fall through to the DB — they are
// never surfaced to callers.
func (s *Service) Catalog(ctx context.Context) ([]*TourPackage, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
		if err == nil {
			var tours []*TourPackage
			if jsonErr := json.Unmarshal(raw, &tours); jsonErr == nil {
				return tours, nil
			}
		} else if err != redis.Nil {
			logger.FromContext(ctx).Warn().Err(err).Msg("Catalog cache read failed")
		}
	}

	tours, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, jsonErr := json.Marshal(tours); jsonErr == nil {
			if err := s.cache.Set(ctx, catalogCacheKey, raw, s.cacheTTL).Err(); err != nil {
				logger.FromContext(ctx).Warn().Err(err).Msg("Catalog cache write failed")
			}
		}
	}

	return tours, nil
}

// Search applies the filter pipeline to the catalog and returns one page
func (s *Service) Search(ctx context.Context, f FilterState) (PageResult, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return PageResult{}, err
	}
	return Filter(catalog, f), nil
}

// GetByID returns one tour or ErrTourNotFound
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*TourPackage, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTourNotFound
	}
	return t, nil
}
