package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/rest/response"
)

// ProfileHandler represent the httphandler for profiles
type ProfileHandler struct {
	Service domain.ProfileUsecase
}

func NewProfileHandler(svc domain.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{
		Service: svc,
	}
}

// Get returns a profile as seen by the caller
func (h *ProfileHandler) Get(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.Service.Get(c.Request.Context(), currentUserID(c), username)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.SingleProfile{Profile: response.NewProfileFromDomain(&profile)})
}

// Follow records a follow edge if not exists
func (h *ProfileHandler) Follow(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.Service.Follow(c.Request.Context(), currentUserID(c), username)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.SingleProfile{Profile: response.NewProfileFromDomain(&profile)})
}

// Unfollow removes a follow edge if exists
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	username := c.Param("username")

	profile, err := h.Service.Unfollow(c.Request.Context(), currentUserID(c), username)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.SingleProfile{Profile: response.NewProfileFromDomain(&profile)})
}
