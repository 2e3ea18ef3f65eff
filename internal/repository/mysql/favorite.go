package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/repository/mysql/model"
)

type favoriteRepository struct {
	DB *gorm.DB
}

var _ domain.FavoriteRepository = (*favoriteRepository)(nil)

// NewFavoriteRepository creates the favorite ledger adapter.
func NewFavoriteRepository(db *gorm.DB) *favoriteRepository {
	return &favoriteRepository{db}
}

func (m *favoriteRepository) Add(ctx context.Context, userID, articleID int64) error {
	favorite := &model.Favorite{
		UserID:    userID,
		ArticleID: articleID,
	}
	err := translateError(m.DB.WithContext(ctx).Create(favorite).Error)
	// the composite key already holding the pair means the edge exists,
	// which is exactly the state the caller asked for
	if errors.Is(err, domain.ErrConflict) {
		return nil
	}
	return err
}

func (m *favoriteRepository) Remove(ctx context.Context, userID, articleID int64) error {
	// removing an absent edge affects zero rows and is fine
	return m.DB.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&model.Favorite{}).
		Error
}

func (m *favoriteRepository) Exists(ctx context.Context, userID, articleID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Favorite{}).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Count(&count).
		Error
	return count > 0, err
}

func (m *favoriteRepository) ListFavoriters(ctx context.Context, articleID int64) ([]int64, error) {
	var res []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Favorite{}).
		Where("article_id = ?", articleID).
		Pluck("user_id", &res).
		Error
	return res, err
}
