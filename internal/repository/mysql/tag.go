package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/repository/mysql/model"
)

type tagRepository struct {
	DB *gorm.DB
}

var _ domain.TagRepository = (*tagRepository)(nil)

// NewTagRepository creates the tag reconciler adapter.
func NewTagRepository(db *gorm.DB) *tagRepository {
	return &tagRepository{db}
}

func (m *tagRepository) GetTags(ctx context.Context, names []string) ([]domain.Tag, error) {
	q := m.DB.WithContext(ctx).Model(&model.Tag{})
	if len(names) > 0 {
		q = q.Where("name IN ?", names)
	}

	var tags []model.Tag
	if err := q.Find(&tags).Error; err != nil {
		return nil, err
	}

	res := make([]domain.Tag, len(tags))
	for i := range tags {
		res[i] = tags[i].ToDomain()
	}
	return res, nil
}

func (m *tagRepository) CreateTags(ctx context.Context, names []string) ([]domain.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	rows := make([]model.Tag, len(names))
	for i, name := range names {
		rows[i] = model.Tag{Name: name}
	}

	// a duplicate name comes back as ErrConflict; the reconciler re-queries
	// in that case instead of failing the whole creation
	if err := m.DB.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, translateError(err)
	}

	res := make([]domain.Tag, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (m *tagRepository) Associate(ctx context.Context, articleID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]model.ArticleTag, len(tagIDs))
	for i, tagID := range tagIDs {
		rows[i] = model.ArticleTag{
			ArticleID: articleID,
			TagID:     tagID,
		}
	}

	return translateError(m.DB.WithContext(ctx).Create(&rows).Error)
}

func (m *tagRepository) GetTagsForArticles(ctx context.Context, articleIDs []int64) ([]domain.ArticleTag, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}

	var rows []struct {
		ArticleID int64
		TagID     int64
		Name      string
	}
	err := m.DB.WithContext(ctx).
		Model(&model.ArticleTag{}).
		Select("article_tags.article_id, article_tags.tag_id, tags.name").
		Joins("JOIN tags ON tags.id = article_tags.tag_id").
		Where("article_tags.article_id IN ?", articleIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ArticleTag, len(rows))
	for i := range rows {
		res[i] = domain.ArticleTag{
			ArticleID: rows[i].ArticleID,
			TagID:     rows[i].TagID,
			Name:      rows[i].Name,
		}
	}
	return res, nil
}
