package domain

import "context"

// FollowRepository is the follow ledger: (follower, followee) edges. The
// article pipeline consumes it read-only through IsFollowing; the profile
// service owns the writes.
type FollowRepository interface {
	// Add records the edge. Adding an existing edge is a no-op.
	Add(ctx context.Context, followerID, followeeID int64) error

	// Remove deletes the edge. Removing a non-existent edge is a no-op.
	Remove(ctx context.Context, followerID, followeeID int64) error

	// IsFollowing reports whether follower follows followee.
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)

	// FollowingSet reports, for each followee id, whether follower follows
	// it; the batched read used when assembling comment/author lists.
	FollowingSet(ctx context.Context, followerID int64, followeeIDs []int64) (map[int64]bool, error)
}

// ProfileUsecase exposes user profiles relative to a viewer.
type ProfileUsecase interface {
	Get(ctx context.Context, viewerID int64, username string) (Profile, error)

	// Follow records a follow edge; following an already-followed user
	// returns the current state. Following yourself is ErrBadParamInput.
	Follow(ctx context.Context, followerID int64, username string) (Profile, error)

	// Unfollow removes the edge; unfollowing a never-followed user is a
	// no-op.
	Unfollow(ctx context.Context, followerID int64, username string) (Profile, error)
}
