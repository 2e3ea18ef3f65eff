package domain

import "context"

// FavoriteRepository is the favorite ledger: (user, article) edges. For a
// given pair at most one edge exists at a time.
type FavoriteRepository interface {
	// Add records the edge. Adding an existing edge is a no-op, so a lost
	// favorite race never surfaces as an error.
	Add(ctx context.Context, userID, articleID int64) error

	// Remove deletes the edge. Removing a non-existent edge is a no-op.
	Remove(ctx context.Context, userID, articleID int64) error

	// Exists reports whether the edge is present.
	Exists(ctx context.Context, userID, articleID int64) (bool, error)

	// ListFavoriters returns the ids of every user who favorited the article.
	ListFavoriters(ctx context.Context, articleID int64) ([]int64, error)
}
