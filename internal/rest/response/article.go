package response

import (
	"time"

	"github.com/conduit-labs/conduit/domain"
)

type Article struct {
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Body           string   `json:"body"`
	TagList        []string `json:"tagList"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
	Favorited      bool     `json:"favorited"`
	FavoritesCount int64    `json:"favoritesCount"`
	Author         Profile  `json:"author"`
}

type SingleArticle struct {
	Article Article `json:"article"`
}

type MultipleArticles struct {
	Articles      []Article `json:"articles"`
	ArticlesCount int       `json:"articlesCount"`
}

// NewArticleFromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	tagList := a.TagList
	if tagList == nil {
		tagList = []string{}
	}
	return Article{
		Slug:           a.Slug,
		Title:          a.Title,
		Description:    a.Description,
		Body:           a.Body,
		TagList:        tagList,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      a.UpdatedAt.UTC().Format(time.RFC3339),
		Favorited:      a.Favorited,
		FavoritesCount: a.FavoritesCount,
		Author:         NewProfileFromDomain(&a.Author),
	}
}

func NewMultipleArticles(list []domain.Article) MultipleArticles {
	articles := make([]Article, len(list))
	for i := range list {
		articles[i] = NewArticleFromDomain(&list[i])
	}
	return MultipleArticles{
		Articles:      articles,
		ArticlesCount: len(articles),
	}
}
