package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-history/internal/models"
	"github.com/adanyl0v/go-task-history/internal/services"
)

const userIDParam = "id"

type userResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func newUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:   user.ID,
		Name: user.Name,
	}
}

type getUserResponse struct {
	User userResponse `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createUserRequest struct {
	// A present empty name is accepted.
	Name *string `json:"name" binding:"required"`
}

type createUserResponse struct {
	Message string `json:"message"`
	UserID  uint64 `json:"user_id"`
}

func (h *handlerImpl) HandleCreateUser(c *gin.Context) {
	var req createUserRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBindingError(err))
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), *req.Name)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create user")
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusCreated, createUserResponse{
		Message: "User created successfully",
		UserID:  user.ID,
	})
}

func (h *handlerImpl) HandleGetUser(c *gin.Context) {
	userID, ok := h.parseIDParam(c, userIDParam)
	if !ok {
		abort(c, newNotFoundError(msgUserNotFound))
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, getUserResponse{User: newUserResponse(user)})
}

type updateUserRequest struct {
	Name *string `json:"name"`
}

func (h *handlerImpl) HandleUpdateUser(c *gin.Context) {
	userID, ok := h.parseIDParam(c, userIDParam)
	if !ok {
		abort(c, newNotFoundError(msgUserNotFound))
		return
	}

	var req updateUserRequest
	err := c.ShouldBindJSON(&req)
	// An empty body is a request without a name.
	if err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBindingError(err))
		return
	}

	params := services.UpdateUserParams{ID: userID}
	if req.Name != nil {
		params.Name = *req.Name
	}

	_, err = h.users.UpdateUser(c.Request.Context(), params)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "User updated successfully"})
}

func (h *handlerImpl) HandleDeleteUser(c *gin.Context) {
	userID, ok := h.parseIDParam(c, userIDParam)
	if !ok {
		abort(c, newNotFoundError(msgUserNotFound))
		return
	}

	err := h.users.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

// parseIDParam treats a malformed ID like an unknown one. IDs are stored as
// signed 64-bit integers, so anything past math.MaxInt64 cannot exist.
func (h *handlerImpl) parseIDParam(c *gin.Context, name string) (uint64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		h.logger.Warn().
			Str(name, raw).
			Msg("malformed id")
		return 0, false
	}
	return id, true
}
