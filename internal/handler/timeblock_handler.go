package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/service"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
	"github.com/campuskit/acadsched-api/pkg/response"
)

// TimeBlockHandler exposes time block endpoints.
type TimeBlockHandler struct {
	service *service.TimeBlockService
}

func NewTimeBlockHandler(svc *service.TimeBlockService) *TimeBlockHandler {
	return &TimeBlockHandler{service: svc}
}

// ListByTerm godoc
// @Summary List time blocks for a term
// @Tags TimeBlocks
// @Produce json
// @Param termId query string true "Term id"
// @Success 200 {object} response.Envelope
// @Router /time-blocks [get]
func (h *TimeBlockHandler) ListByTerm(c *gin.Context) {
	termID := c.Query("termId")
	if termID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "termId query parameter is required"))
		return
	}
	blocks, err := h.service.ListByTerm(c.Request.Context(), termID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, blocks, nil)
}

// Create godoc
// @Summary Create time block
// @Tags TimeBlocks
// @Accept json
// @Produce json
// @Param payload body dto.CreateTimeBlockRequest true "Time block payload"
// @Success 201 {object} response.Envelope
// @Router /time-blocks [post]
func (h *TimeBlockHandler) Create(c *gin.Context) {
	var req dto.CreateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	block, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, block)
}

// SetActive godoc
// @Summary Toggle time block availability
// @Tags TimeBlocks
// @Produce json
// @Param id path string true "Time block id"
// @Param active query bool true "Active flag"
// @Success 200 {object} response.Envelope
// @Router /time-blocks/{id}/active [patch]
func (h *TimeBlockHandler) SetActive(c *gin.Context) {
	active, err := strconv.ParseBool(c.DefaultQuery("active", "true"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "active must be a boolean"))
		return
	}
	block, err := h.service.SetActive(c.Request.Context(), c.Param("id"), active)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, block, nil)
}
