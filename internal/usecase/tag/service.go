package tag

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/conduit-labs/conduit/domain"
)

const cacheTTL = 5 * time.Minute

// Service serves the full tag-name list from the cache, falling back to the
// store behind singleflight so a cold or expired cache triggers one rebuild,
// not one per request.
type Service struct {
	tagRepo domain.TagRepository
	cache   domain.TagCache
	group   singleflight.Group
}

var _ domain.TagUsecase = (*Service)(nil)

func NewService(tagRepo domain.TagRepository, cache domain.TagCache) *Service {
	return &Service{
		tagRepo: tagRepo,
		cache:   cache,
	}
}

func (s *Service) ListNames(ctx context.Context) ([]string, error) {
	names, expired, err := s.cache.GetNames(ctx)
	if err == nil {
		if expired {
			go s.rebuild()
		}
		return names, nil
	}

	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("tag cache read failed: %v", err)
	}

	res, err, _ := s.group.Do("tags", func() (any, error) {
		return s.loadNames(ctx)
	})
	if err != nil {
		return nil, err
	}
	return res.([]string), nil
}

func (s *Service) loadNames(ctx context.Context) ([]string, error) {
	tags, err := s.tagRepo.GetTags(ctx, nil)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(tags))
	for i := range tags {
		names[i] = tags[i].Name
	}

	if err := s.cache.SetNames(ctx, names, cacheTTL); err != nil {
		logrus.Warnf("failed to set tag cache: %v", err)
	}
	return names, nil
}

func (s *Service) rebuild() {
	_, err, _ := s.group.Do("tags", func() (any, error) {
		return s.loadNames(context.Background())
	})
	if err != nil {
		logrus.Errorf("tag cache rebuild failed: %v", err)
	}
}
