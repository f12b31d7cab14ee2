package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/voyager-backend-go/internal/models"
	"github.com/jengzang/voyager-backend-go/internal/service"
	"github.com/jengzang/voyager-backend-go/pkg/response"
)

// AuditHandler serves the generation and replan logs
type AuditHandler struct {
	service *service.TripService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service *service.TripService) *AuditHandler {
	return &AuditHandler{service: service}
}

// GetGenerations handles GET /api/v1/generations
func (h *AuditHandler) GetGenerations(c *gin.Context) {
	var filter models.LogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	filter.Normalize()

	records, total, err := h.service.ListGenerations(filter)
	if err != nil {
		response.InternalError(c, "Failed to get generations")
		return
	}

	response.Paged(c, records, total, filter.Limit, filter.Offset)
}

// GetReplans handles GET /api/v1/replans
func (h *AuditHandler) GetReplans(c *gin.Context) {
	var filter models.LogFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	filter.Normalize()

	records, total, err := h.service.ListReplans(filter)
	if err != nil {
		response.InternalError(c, "Failed to get replans")
		return
	}

	response.Paged(c, records, total, filter.Limit, filter.Offset)
}

// GetGenerationStats handles GET /api/v1/generations/stats
func (h *AuditHandler) GetGenerationStats(c *gin.Context) {
	st, err := h.service.GenerationStats()
	if err != nil {
		response.InternalError(c, "Failed to get generation stats")
		return
	}

	response.Success(c, st)
}
