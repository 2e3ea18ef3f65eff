package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/rest/middleware"
	"github.com/conduit-labs/conduit/internal/rest/request"
	"github.com/conduit-labs/conduit/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// ArticleHandler  represent the httphandler for article
type ArticleHandler struct {
	Service domain.ArticleUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service: svc,
	}
}

// currentUserID returns the authenticated user id, 0 when anonymous.
func currentUserID(c *gin.Context) int64 {
	v, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return 0
	}
	id, ok := v.(int64)
	if !ok {
		return 0
	}
	return id
}

func parsePagination(c *gin.Context) (limit, offset int64) {
	if v, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil {
		limit = v
	}
	if v, err := strconv.ParseInt(c.Query("offset"), 10, 64); err == nil {
		offset = v
	}
	return limit, offset
}

// List will fetch articles matching the query filters, newest first
func (a *ArticleHandler) List(c *gin.Context) {
	limit, offset := parsePagination(c)
	filter := domain.ArticleFilter{
		Tag:         c.Query("tag"),
		Author:      c.Query("author"),
		FavoritedBy: c.Query("favorited"),
		Limit:       limit,
		Offset:      offset,
	}

	listAr, err := a.Service.List(c.Request.Context(), currentUserID(c), filter)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.NewMultipleArticles(listAr))
}

// Feed will fetch articles authored by users the caller follows
func (a *ArticleHandler) Feed(c *gin.Context) {
	limit, offset := parsePagination(c)

	listAr, err := a.Service.Feed(c.Request.Context(), currentUserID(c), limit, offset)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.NewMultipleArticles(listAr))
}

// Get will get a single article by its slug
func (a *ArticleHandler) Get(c *gin.Context) {
	slug := c.Param("slug")

	art, err := a.Service.Get(c.Request.Context(), currentUserID(c), slug)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.SingleArticle{Article: response.NewArticleFromDomain(&art)})
}

// Create will store the article by given request body
func (a *ArticleHandler) Create(c *gin.Context) {
	var req request.CreateArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: bindingErrorMessage(err)})
		return
	}

	art, err := a.Service.Create(
		c.Request.Context(),
		currentUserID(c),
		req.Article.Title,
		req.Article.Description,
		req.Article.Body,
		req.Article.TagList,
	)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, response.SingleArticle{Article: response.NewArticleFromDomain(&art)})
}

// Update merges the supplied fields into the caller's article
func (a *ArticleHandler) Update(c *gin.Context) {
	slug := c.Param("slug")

	var req request.UpdateArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: bindingErrorMessage(err)})
		return
	}

	art, err := a.Service.Update(
		c.Request.Context(),
		currentUserID(c),
		slug,
		req.Article.Title,
		req.Article.Description,
		req.Article.Body,
	)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.SingleArticle{Article: response.NewArticleFromDomain(&art)})
}

// Delete will delete the caller's article by slug
func (a *ArticleHandler) Delete(c *gin.Context) {
	slug := c.Param("slug")

	if err := a.Service.Delete(c.Request.Context(), currentUserID(c), slug); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.Status(http.StatusNoContent)
}

// Favorite records a favorite edge if not exists
func (a *ArticleHandler) Favorite(c *gin.Context) {
	slug := c.Param("slug")

	art, err := a.Service.Favorite(c.Request.Context(), currentUserID(c), slug)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.SingleArticle{Article: response.NewArticleFromDomain(&art)})
}

// Unfavorite removes a favorite edge if exists
func (a *ArticleHandler) Unfavorite(c *gin.Context) {
	slug := c.Param("slug")

	art, err := a.Service.Unfavorite(c.Request.Context(), currentUserID(c), slug)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.SingleArticle{Article: response.NewArticleFromDomain(&art)})
}

// bindingErrorMessage flattens field validation failures into one line;
// other binding errors pass through as-is.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		parts[i] = strings.ToLower(fe.Field()) + " " + fe.Tag()
	}
	return strings.Join(parts, ", ")
}

// errorMessage keeps storage internals out of responses
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrBadParamInput):
		return err.Error()
	default:
		return domain.ErrInternalServerError.Error()
	}
}

// getStatusCode will get the code of the error from the usecase layer
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
