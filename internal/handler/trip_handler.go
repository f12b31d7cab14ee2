package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/voyager-backend-go/internal/generator"
	"github.com/jengzang/voyager-backend-go/internal/models"
	"github.com/jengzang/voyager-backend-go/internal/replan"
	"github.com/jengzang/voyager-backend-go/internal/selection"
	"github.com/jengzang/voyager-backend-go/internal/service"
	"github.com/jengzang/voyager-backend-go/pkg/response"
)

// forwardFailure is the fixed body of a failed POST /api/trip
const forwardFailure = "Failed to generate trip"

// TripHandler handles HTTP requests for trips
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// Forward handles POST /api/trip
// The generator's body is passed back untouched; any failure collapses to a
// single 500.
func (h *TripHandler) Forward(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": forwardFailure})
		return
	}

	body, err := h.service.Forward(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": forwardFailure})
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}

// Generate handles POST /api/v1/trips/generate
func (h *TripHandler) Generate(c *gin.Context) {
	var form models.TripForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid trip form: "+err.Error())
		return
	}

	trip, err := h.service.Generate(c.Request.Context(), form)
	if err != nil {
		var timeout *generator.TimeoutError
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			response.BadRequest(c, err.Error())
		case errors.As(err, &timeout):
			response.GatewayTimeout(c, generator.UserMessage(err))
		default:
			response.BadGateway(c, generator.UserMessage(err))
		}
		return
	}

	response.Success(c, trip)
}

// ReplanRequest is the body of POST /api/v1/trips/replan
type ReplanRequest struct {
	Trip      *models.Trip `json:"trip" binding:"required"`
	Day       int          `json:"day" binding:"required"`
	Strategy  string       `json:"strategy" binding:"required"`
	Travelers int          `json:"travelers"`
}

// Replan handles POST /api/v1/trips/replan
func (h *TripHandler) Replan(c *gin.Context) {
	var req ReplanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid replan request: "+err.Error())
		return
	}

	result, err := h.service.Replan(req.Trip, req.Day, req.Strategy, req.Travelers)
	if err != nil {
		writeTripError(c, err)
		return
	}

	response.Success(c, result)
}

// DayViewRequest is the body of POST /api/v1/trips/day-view
type DayViewRequest struct {
	Trip      *models.Trip         `json:"trip" binding:"required"`
	Day       int                  `json:"day" binding:"required"`
	Travelers int                  `json:"travelers"`
	Selection *selection.Selection `json:"selection"`
}

// DayViewResponse adds the print data of the whole trip to a day view
type DayViewResponse struct {
	*selection.DayView
	Printable []selection.PrintDay `json:"printable"`
}

// DayView handles POST /api/v1/trips/day-view
func (h *TripHandler) DayView(c *gin.Context) {
	var req DayViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid day view request: "+err.Error())
		return
	}

	view, err := h.service.DayView(req.Trip, req.Day, req.Travelers, req.Selection)
	if err != nil {
		writeTripError(c, err)
		return
	}

	printable, err := h.service.Printable(req.Trip, req.Travelers)
	if err != nil {
		writeTripError(c, err)
		return
	}

	response.Success(c, DayViewResponse{DayView: view, Printable: printable})
}

// GetPresets handles GET /api/v1/presets
func (h *TripHandler) GetPresets(c *gin.Context) {
	response.Success(c, h.service.Presets())
}

func writeTripError(c *gin.Context, err error) {
	var cfgErr *replan.ConfigurationError
	switch {
	case errors.As(err, &cfgErr), errors.Is(err, service.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrDayNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
