package booking

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

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	customerID := c.GetInt64("user_id")

	b, err := h.service.Create(c.Request.Context(), req, customerID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotAvailable),
			errors.Is(err, ErrInvalidDates),
			errors.Is(err, ErrBadDateInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, "Booking created successfully", b)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := c.GetString("role")

	bookings, err := h.service.List(c.Request.Context(), userID, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	response.Success(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *Handler) Cancel(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	customerID := c.GetInt64("user_id")

	if err := h.service.Cancel(c.Request.Context(), bookingID, customerID); err != nil {
		switch {
		case errors.Is(err, ErrNotFoundOrNotOwned), errors.Is(err, ErrCancelAfterStart):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, "Booking cancelled successfully", nil)
}

func (h *Handler) Return(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	if err := h.service.MarkReturned(c.Request.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to mark booking as returned")
		}
		return
	}

	response.Success(c, http.StatusOK, "Booking marked as returned", nil)
}
