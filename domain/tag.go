package domain

import (
	"context"
	"time"
)

// Tag is a label attachable to articles. Names are matched exactly
// (case-sensitive, no normalization); tags are created lazily on first
// reference and never deleted or renamed.
type Tag struct {
	ID   int64
	Name string
}

// ArticleTag is one row of the article/tag association, carrying the tag
// name so batched reads need no second lookup.
type ArticleTag struct {
	ArticleID int64
	TagID     int64
	Name      string
}

// TagRepository is the tag reconciler adapter.
type TagRepository interface {
	// GetTags returns the tags that currently exist among the given names.
	// An empty names slice returns every tag.
	GetTags(ctx context.Context, names []string) ([]Tag, error)

	// CreateTags inserts the given tag names. An empty slice is a no-op.
	// A duplicate name surfaces as ErrConflict; callers treat that as
	// "already exists" and re-query.
	CreateTags(ctx context.Context, names []string) ([]Tag, error)

	// Associate bulk-inserts the association rows for one article.
	Associate(ctx context.Context, articleID int64, tagIDs []int64) error

	// GetTagsForArticles is the batched read backing list assembly; callers
	// group the result by article id.
	GetTagsForArticles(ctx context.Context, articleIDs []int64) ([]ArticleTag, error)
}

// TagCache caches the full tag-name list.
type TagCache interface {
	// GetNames returns the cached names and whether they are logically
	// expired. Returns ErrCacheMiss when the key is absent.
	GetNames(ctx context.Context) (names []string, expired bool, err error)
	SetNames(ctx context.Context, names []string, ttl time.Duration) error
}

type TagUsecase interface {
	// ListNames returns every tag name known to the system.
	ListNames(ctx context.Context) ([]string, error)
}
