package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/rest"
)

type stubArticleUsecase struct {
	article domain.Article
	err     error
}

func (s *stubArticleUsecase) Create(context.Context, int64, string, string, string, []string) (domain.Article, error) {
	return s.article, s.err
}
func (s *stubArticleUsecase) Update(context.Context, int64, string, *string, *string, *string) (domain.Article, error) {
	return s.article, s.err
}
func (s *stubArticleUsecase) Delete(context.Context, int64, string) error { return s.err }
func (s *stubArticleUsecase) Get(context.Context, int64, string) (domain.Article, error) {
	return s.article, s.err
}
func (s *stubArticleUsecase) List(context.Context, int64, domain.ArticleFilter) ([]domain.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Article{s.article}, nil
}
func (s *stubArticleUsecase) Feed(context.Context, int64, int64, int64) ([]domain.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []domain.Article{s.article}, nil
}
func (s *stubArticleUsecase) Favorite(context.Context, int64, string) (domain.Article, error) {
	return s.article, s.err
}
func (s *stubArticleUsecase) Unfavorite(context.Context, int64, string) (domain.Article, error) {
	return s.article, s.err
}
func (s *stubArticleUsecase) InitBloomFilter(context.Context) error { return s.err }

func newRouter(svc domain.ArticleUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := rest.NewArticleHandler(svc)
	route := gin.New()
	route.GET("/api/articles", handler.List)
	route.GET("/api/articles/:slug", handler.Get)
	route.POST("/api/articles", handler.Create)
	return route
}

func sampleArticle() domain.Article {
	return domain.Article{
		ID:          1,
		Slug:        "test-article",
		Title:       "Test Article",
		Description: "desc",
		Body:        "body",
		TagList:     []string{"go"},
		AuthorID:    1,
		Author:      domain.Profile{Username: "alice"},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestGetArticle(t *testing.T) {
	route := newRouter(&stubArticleUsecase{article: sampleArticle()})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/articles/test-article", nil)
	route.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Article struct {
			Slug    string   `json:"slug"`
			TagList []string `json:"tagList"`
			Author  struct {
				Username string `json:"username"`
			} `json:"author"`
		} `json:"article"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "test-article", body.Article.Slug)
	assert.Equal(t, []string{"go"}, body.Article.TagList)
	assert.Equal(t, "alice", body.Article.Author.Username)
}

func TestListArticlesEnvelope(t *testing.T) {
	route := newRouter(&stubArticleUsecase{article: sampleArticle()})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/articles?limit=5", nil)
	route.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Articles      []json.RawMessage `json:"articles"`
		ArticlesCount int               `json:"articlesCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Articles, 1)
	assert.Equal(t, 1, body.ArticlesCount)
}

func TestCreateArticleValidation(t *testing.T) {
	route := newRouter(&stubArticleUsecase{article: sampleArticle()})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/articles",
		strings.NewReader(`{"article":{"title":"no body or description"}}`))
	req.Header.Set("Content-Type", "application/json")
	route.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrConflict, http.StatusConflict},
		{domain.ErrUnauthorized, http.StatusForbidden},
		{domain.ErrBadParamInput, http.StatusUnprocessableEntity},
		{domain.ErrInternalServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		route := newRouter(&stubArticleUsecase{err: tt.err})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/articles/any", nil)
		route.ServeHTTP(rec, req)

		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}

func TestStorageErrorsAreMasked(t *testing.T) {
	route := newRouter(&stubArticleUsecase{err: assert.AnError})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/articles/any", nil)
	route.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
