package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/repository"
	"github.com/conduit-labs/conduit/internal/repository/mysql/model"
)

type articleRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository creates the article store adapter.
func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

// articleRow is one article joined with its author plus the viewer-relative
// favorited/following flags and the favorites count, all computed store-side
// in a single pass.
type articleRow struct {
	ID             int64
	Slug           string
	Title          string
	Description    string
	Body           string
	AuthorID       int64
	UpdatedAt      time.Time
	CreatedAt      time.Time
	AuthorUsername string
	AuthorBio      string
	AuthorImage    string
	FavoritesCount int64
	Favorited      bool
	Following      bool `gorm:"column:following"`
}

func (r *articleRow) toDomain() domain.Article {
	return domain.Article{
		ID:          r.ID,
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		Body:        r.Body,
		AuthorID:    r.AuthorID,
		Author: domain.Profile{
			Username:  r.AuthorUsername,
			Bio:       r.AuthorBio,
			Image:     r.AuthorImage,
			Following: r.Following,
		},
		Favorited:      r.Favorited,
		FavoritesCount: r.FavoritesCount,
		UpdatedAt:      r.UpdatedAt,
		CreatedAt:      r.CreatedAt,
	}
}

// `following` needs quoting, it is reserved in MySQL 8.
const articleColumns = "articles.id, articles.slug, articles.title, articles.description, articles.body, " +
	"articles.author_id, articles.updated_at, articles.created_at, " +
	"users.username AS author_username, users.bio AS author_bio, users.image AS author_image, " +
	"(SELECT COUNT(*) FROM favorites WHERE favorites.article_id = articles.id) AS favorites_count, " +
	"EXISTS(SELECT 1 FROM favorites WHERE favorites.article_id = articles.id AND favorites.user_id = ?) AS favorited, " +
	"EXISTS(SELECT 1 FROM follows WHERE follows.followee_id = articles.author_id AND follows.follower_id = ?) AS `following`"

func (m *articleRepository) viewerQuery(ctx context.Context, viewerID int64) *gorm.DB {
	return m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Select(articleColumns, viewerID, viewerID).
		Joins("JOIN users ON users.id = articles.author_id")
}

func (m *articleRepository) FindBySlug(ctx context.Context, viewerID int64, slug string) (domain.Article, error) {
	var row articleRow
	err := m.viewerQuery(ctx, viewerID).
		Where("articles.slug = ?", slug).
		Take(&row).Error
	if err != nil {
		return domain.Article{}, translateError(err)
	}
	return row.toDomain(), nil
}

func (m *articleRepository) FindMany(ctx context.Context, viewerID int64, filter domain.ArticleFilter) (res []domain.Article, err error) {
	repository.PageVerify(&filter.Limit, &filter.Offset)

	q := m.viewerQuery(ctx, viewerID)
	if filter.Tag != "" {
		q = q.Where("EXISTS(SELECT 1 FROM article_tags JOIN tags ON tags.id = article_tags.tag_id "+
			"WHERE article_tags.article_id = articles.id AND tags.name = ?)", filter.Tag)
	}
	if filter.Author != "" {
		q = q.Where("users.username = ?", filter.Author)
	}
	if filter.FavoritedBy != "" {
		q = q.Where("EXISTS(SELECT 1 FROM favorites JOIN users favoriter ON favoriter.id = favorites.user_id "+
			"WHERE favorites.article_id = articles.id AND favoriter.username = ?)", filter.FavoritedBy)
	}
	if filter.FollowedBy != 0 {
		q = q.Where("EXISTS(SELECT 1 FROM follows WHERE follows.followee_id = articles.author_id "+
			"AND follows.follower_id = ?)", filter.FollowedBy)
	}

	var rows []articleRow
	err = q.Order("articles.created_at DESC, articles.id DESC").
		Limit(int(filter.Limit)).
		Offset(int(filter.Offset)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res = make([]domain.Article, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
	}
	return res, nil
}

func (m *articleRepository) Insert(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	result := m.DB.WithContext(ctx).Create(articleModel)
	if result.Error != nil {
		return translateError(result.Error)
	}
	a.ID = articleModel.ID
	a.CreatedAt = articleModel.CreatedAt
	a.UpdatedAt = articleModel.UpdatedAt
	return nil
}

func (m *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	articleModel.UpdatedAt = time.Now()
	result := m.DB.WithContext(ctx).
		Model(&model.Article{ID: a.ID}).
		Select("title", "slug", "description", "body", "updated_at").
		Updates(articleModel)
	if result.Error != nil {
		return translateError(result.Error)
	}
	a.UpdatedAt = articleModel.UpdatedAt
	return nil
}

// Delete removes the base row only; association and favorite rows follow it
// out through the store's cascade rule.
func (m *articleRepository) Delete(ctx context.Context, id int64) error {
	result := m.DB.WithContext(ctx).Delete(&model.Article{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (m *articleRepository) ListSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Pluck("slug", &slugs).
		Error
	return slugs, err
}
