package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-registry-api/internal/dto"
	"github.com/noah-isme/school-registry-api/internal/models"
	"github.com/noah-isme/school-registry-api/pkg/response"
)

type userService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, req dto.UserRequest) (*models.User, error)
}

// UserHandler exposes user administration endpoints.
type UserHandler struct {
	users userService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users userService) *UserHandler {
	return &UserHandler{users: users}
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.UsersFromModels(users))
}

// Create godoc
// @Summary Create user
// @Description The password is stored as a bcrypt hash and never returned. Role is marketing or manager.
// @Description The route is open so the first account can be created on an empty registry; deployments
// @Description past bootstrap should put it behind the gateway.
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.UserRequest true "User payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserRequest
	if !bindJSON(c, &req, "user") {
		return
	}
	_, err := h.users.Create(c.Request.Context(), req)
	respondMutation(c, err, func() (interface{}, error) {
		users, err := h.users.List(c.Request.Context())
		if err != nil {
			return nil, err
		}
		return dto.UsersFromModels(users), nil
	})
}
