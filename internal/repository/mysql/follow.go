package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/repository/mysql/model"
)

type followRepository struct {
	DB *gorm.DB
}

var _ domain.FollowRepository = (*followRepository)(nil)

// NewFollowRepository creates the follow ledger adapter.
func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{db}
}

func (m *followRepository) Add(ctx context.Context, followerID, followeeID int64) error {
	follow := &model.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	err := translateError(m.DB.WithContext(ctx).Create(follow).Error)
	if errors.Is(err, domain.ErrConflict) {
		// already following
		return nil
	}
	return err
}

func (m *followRepository) Remove(ctx context.Context, followerID, followeeID int64) error {
	return m.DB.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{}).
		Error
}

func (m *followRepository) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).
		Error
	return count > 0, err
}

func (m *followRepository) FollowingSet(ctx context.Context, followerID int64, followeeIDs []int64) (map[int64]bool, error) {
	res := make(map[int64]bool, len(followeeIDs))
	if len(followeeIDs) == 0 {
		return res, nil
	}

	var followed []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id IN ?", followerID, followeeIDs).
		Pluck("followee_id", &followed).
		Error
	if err != nil {
		return nil, err
	}

	for _, id := range followed {
		res[id] = true
	}
	return res, nil
}
