package tag_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/usecase/tag"
)

type stubTagRepo struct {
	mu       sync.Mutex
	tags     []domain.Tag
	getCalls int
}

func (r *stubTagRepo) GetTags(_ context.Context, names []string) ([]domain.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	if len(names) == 0 {
		return r.tags, nil
	}
	return nil, nil
}

func (r *stubTagRepo) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getCalls
}

func (r *stubTagRepo) CreateTags(context.Context, []string) ([]domain.Tag, error) { return nil, nil }
func (r *stubTagRepo) Associate(context.Context, int64, []int64) error            { return nil }
func (r *stubTagRepo) GetTagsForArticles(context.Context, []int64) ([]domain.ArticleTag, error) {
	return nil, nil
}

type stubTagCache struct {
	mu      sync.Mutex
	names   []string
	expired bool
	present bool
}

func (c *stubTagCache) GetNames(context.Context) ([]string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.present {
		return nil, false, domain.ErrCacheMiss
	}
	return c.names, c.expired, nil
}

func (c *stubTagCache) SetNames(_ context.Context, names []string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = names
	c.present = true
	c.expired = false
	return nil
}

func TestListNamesCacheMiss(t *testing.T) {
	repo := &stubTagRepo{tags: []domain.Tag{{ID: 1, Name: "go"}, {ID: 2, Name: "redis"}}}
	cache := &stubTagCache{}
	svc := tag.NewService(repo, cache)

	names, err := svc.ListNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "redis"}, names)

	// the miss populated the cache
	cached, _, err := cache.GetNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "redis"}, cached)
}

func TestListNamesCacheHit(t *testing.T) {
	repo := &stubTagRepo{tags: []domain.Tag{{ID: 1, Name: "go"}}}
	cache := &stubTagCache{names: []string{"cached"}, present: true}
	svc := tag.NewService(repo, cache)

	names, err := svc.ListNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cached"}, names)
	assert.Zero(t, repo.calls())
}

func TestListNamesStaleHitServesAndRebuilds(t *testing.T) {
	repo := &stubTagRepo{tags: []domain.Tag{{ID: 1, Name: "fresh"}}}
	cache := &stubTagCache{names: []string{"stale"}, present: true, expired: true}
	svc := tag.NewService(repo, cache)

	// a stale hit serves the old value immediately
	names, err := svc.ListNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"stale"}, names)

	// and kicks off a background rebuild
	assert.Eventually(t, func() bool {
		cached, _, err := cache.GetNames(context.Background())
		return err == nil && len(cached) == 1 && cached[0] == "fresh"
	}, time.Second, 10*time.Millisecond)
}
