package user

import (
	"errors"
	"net/http"
	"strconv"

	"vehiclerental/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve users")
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved successfully", users)
}

func (h *Handler) Update(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	actorID := c.GetInt64("user_id")
	actorRole := c.GetString("role")

	updated, err := h.service.Update(c.Request.Context(), targetID, req, actorID, actorRole)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrNotYourProfile),
			errors.Is(err, ErrRoleChangeForbidden),
			errors.Is(err, ErrInvalidRole),
			errors.Is(err, ErrPasswordTooShort),
			errors.Is(err, ErrEmailExists),
			errors.Is(err, ErrNoFields):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", updated)
}

func (h *Handler) Delete(c *gin.Context) {
	targetID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), targetID); err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrHasActiveBookings):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete user")
		}
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}
