package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/rest/request"
	"github.com/conduit-labs/conduit/internal/rest/response"
)

// CommentHandler represent the httphandler for comments
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// Add stores a comment on the article behind the slug
func (h *CommentHandler) Add(c *gin.Context) {
	slug := c.Param("slug")

	var req request.AddComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: bindingErrorMessage(err)})
		return
	}

	comment, err := h.Service.Add(c.Request.Context(), currentUserID(c), slug, req.Comment.Body)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, response.SingleComment{Comment: response.NewCommentFromDomain(&comment)})
}

// List fetches the article's comments newest-first
func (h *CommentHandler) List(c *gin.Context) {
	slug := c.Param("slug")

	comments, err := h.Service.List(c.Request.Context(), currentUserID(c), slug)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.NewMultipleComments(comments))
}

// Delete removes the caller's comment by id
func (h *CommentHandler) Delete(c *gin.Context) {
	idP, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), currentUserID(c), idP); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.Status(http.StatusNoContent)
}
