package domain

import (
	"context"
	"time"
)

// Profile is the public face of a user as seen by a particular viewer.
type Profile struct {
	Username  string
	Bio       string
	Image     string
	Following bool // does the viewer follow this user
}

// Article is the assembled article aggregate: the base record plus its
// de-duplicated tag list, the favorite count, and the viewer-relative
// favorited/following flags.
type Article struct {
	ID             int64     // Unique identifier, store-assigned
	Slug           string    // Derived from Title, unique across all articles
	Title          string    // Article title
	Description    string    // Short description
	Body           string    // Article body content
	TagList        []string  // De-duplicated tag names
	AuthorID       int64     // Owning user, immutable after creation
	Author         Profile   // Author as seen by the viewer
	Favorited      bool      // Has the viewer favorited this article
	FavoritesCount int64     // Total favorite edges for this article
	CreatedAt      time.Time // Creation timestamp
	UpdatedAt      time.Time // Last update timestamp
}

// ArticleFilter narrows FindMany. Zero values mean "no filter".
type ArticleFilter struct {
	Tag         string // only articles carrying this tag name
	Author      string // only articles by this author username
	FavoritedBy string // only articles favorited by this username
	FollowedBy  int64  // feed: only articles by authors this user id follows
	Limit       int64
	Offset      int64
}

// ArticleRepository is the article store adapter. Reads take a viewer id
// (0 = anonymous) so the favorited/following flags and the favorites count
// come back computed store-side in a single pass; TagList is left for the
// service to fill.
type ArticleRepository interface {
	// FindBySlug retrieves a single article by its slug.
	// Returns ErrNotFound if no article owns the slug.
	FindBySlug(ctx context.Context, viewerID int64, slug string) (Article, error)

	// FindMany retrieves filtered, paginated articles ordered newest-first.
	FindMany(ctx context.Context, viewerID int64, filter ArticleFilter) ([]Article, error)

	// Insert creates the base article row and backfills ID and timestamps.
	// A slug collision at the unique index surfaces as ErrConflict, so a
	// lost creation race reads the same as a pre-detected one.
	Insert(ctx context.Context, a *Article) error

	// Update persists title, slug, description and body of an existing row.
	Update(ctx context.Context, a *Article) error

	// Delete removes the base row by id. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id int64) error

	// ListSlugs returns every article slug, used to seed the bloom filter.
	ListSlugs(ctx context.Context) ([]string, error)
}

// ArticleUsecase is the article assembly service: it composes the article
// store, the tag reconciler and the favorite/follow ledgers. Stateless per
// call, safe for concurrent invocation. A viewer/user id of 0 means
// anonymous.
type ArticleUsecase interface {
	Create(ctx context.Context, authorID int64, title, description, body string, tagNames []string) (Article, error)

	// Update merges the non-nil fields into the stored article. Only the
	// author may update; a new title re-derives the slug.
	Update(ctx context.Context, userID int64, slug string, title, description, body *string) (Article, error)

	Delete(ctx context.Context, userID int64, slug string) error

	Get(ctx context.Context, viewerID int64, slug string) (Article, error)

	List(ctx context.Context, viewerID int64, filter ArticleFilter) ([]Article, error)

	// Feed lists articles authored by users the given user follows.
	Feed(ctx context.Context, userID, limit, offset int64) ([]Article, error)

	// Favorite records a favorite edge for (userID, slug); favoriting an
	// already-favorited article returns the current state unchanged.
	Favorite(ctx context.Context, userID int64, slug string) (Article, error)

	// Unfavorite removes the favorite edge; removing a non-existent edge is
	// a no-op.
	Unfavorite(ctx context.Context, userID int64, slug string) (Article, error)

	// InitBloomFilter seeds the slug bloom filter from the store.
	InitBloomFilter(ctx context.Context) error
}
