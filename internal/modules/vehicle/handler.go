package vehicle

import (
	"errors"
	"net/http"
	"strconv"

	"vehiclerental/internal/pkg/response"
	"vehiclerental/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, ErrMissingFields.Error(), fieldErrs)
		return
	}

	v, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields),
			errors.Is(err, ErrInvalidType),
			errors.Is(err, ErrInvalidPrice),
			errors.Is(err, ErrInvalidStatus),
			errors.Is(err, ErrRegistrationExists):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create vehicle")
		}
		return
	}

	response.Success(c, http.StatusCreated, "Vehicle created successfully", v)
}

func (h *Handler) GetAll(c *gin.Context) {
	vehicles, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}

	response.Success(c, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("vehicleId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrVehicleNotFound) {
			response.Error(c, http.StatusNotFound, err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to retrieve vehicle")
		return
	}

	response.Success(c, http.StatusOK, "Vehicle retrieved successfully", v)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("vehicleId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrVehicleNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrInvalidType),
			errors.Is(err, ErrInvalidPrice),
			errors.Is(err, ErrInvalidStatus),
			errors.Is(err, ErrRegistrationExists),
			errors.Is(err, ErrNoFields):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update vehicle")
		}
		return
	}

	response.Success(c, http.StatusOK, "Vehicle updated successfully", v)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("vehicleId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrVehicleNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrHasActiveBookings):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete vehicle")
		}
		return
	}

	response.Success(c, http.StatusOK, "Vehicle deleted successfully", nil)
}
