package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/rest/request"
	"github.com/conduit-labs/conduit/internal/rest/response"
)

// UserHandler represent the httphandler for accounts
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Register creates a new account
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: bindingErrorMessage(err)})
		return
	}

	user, err := h.Service.Register(c.Request.Context(), req.User.Email, req.User.Username, req.User.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, response.SingleUser{User: response.NewUserFromDomain(&user)})
}

// Login verifies the credentials and issues a token
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: bindingErrorMessage(err)})
		return
	}

	user, err := h.Service.Login(c.Request.Context(), req.User.Email, req.User.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.SingleUser{User: response.NewUserFromDomain(&user)})
}

// GetCurrent returns the caller's account with a fresh token
func (h *UserHandler) GetCurrent(c *gin.Context) {
	user, err := h.Service.GetCurrent(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.SingleUser{User: response.NewUserFromDomain(&user)})
}

// Update merges the supplied fields into the caller's account
func (h *UserHandler) Update(c *gin.Context) {
	var req request.UpdateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Message: bindingErrorMessage(err)})
		return
	}

	user, err := h.Service.Update(c.Request.Context(), currentUserID(c), domain.UserUpdate{
		Email:    req.User.Email,
		Username: req.User.Username,
		Password: req.User.Password,
		Bio:      req.User.Bio,
		Image:    req.User.Image,
	})
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, response.SingleUser{User: response.NewUserFromDomain(&user)})
}
