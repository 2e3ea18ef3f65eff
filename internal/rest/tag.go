package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/rest/response"
)

// TagHandler represent the httphandler for tags
type TagHandler struct {
	Service domain.TagUsecase
}

func NewTagHandler(svc domain.TagUsecase) *TagHandler {
	return &TagHandler{
		Service: svc,
	}
}

// List returns every known tag name
func (h *TagHandler) List(c *gin.Context) {
	names, err := h.Service.ListNames(c.Request.Context())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.NewTagList(names))
}
