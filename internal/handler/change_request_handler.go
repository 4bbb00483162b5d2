package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	"github.com/campuskit/acadsched-api/internal/service"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
	"github.com/campuskit/acadsched-api/pkg/response"
)

// ChangeRequestHandler exposes schedule change request endpoints.
type ChangeRequestHandler struct {
	service *service.ChangeRequestService
}

func NewChangeRequestHandler(svc *service.ChangeRequestService) *ChangeRequestHandler {
	return &ChangeRequestHandler{service: svc}
}

// List godoc
// @Summary List change requests
// @Tags ChangeRequests
// @Produce json
// @Param termId query string false "Filter by term"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Envelope
// @Router /change-requests [get]
func (h *ChangeRequestHandler) List(c *gin.Context) {
	filter := models.ChangeRequestFilter{
		TermID:       c.Query("termId"),
		DepartmentID: c.Query("departmentId"),
		RequestedBy:  c.Query("requestedBy"),
		Status:       models.ChangeRequestStatus(c.Query("status")),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	requests, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests, pagination)
}

// Get godoc
// @Summary Get change request by id
// @Tags ChangeRequests
// @Produce json
// @Param id path string true "Change request id"
// @Success 200 {object} response.Envelope
// @Router /change-requests/{id} [get]
func (h *ChangeRequestHandler) Get(c *gin.Context) {
	request, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}

// Create godoc
// @Summary Submit a change request
// @Tags ChangeRequests
// @Accept json
// @Produce json
// @Param payload body dto.CreateChangeRequestRequest true "Request payload"
// @Success 201 {object} response.Envelope
// @Router /change-requests [post]
func (h *ChangeRequestHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.CreateChangeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	request, err := h.service.Create(c.Request.Context(), req, claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, request)
}

// Review godoc
// @Summary Approve or reject a pending change request
// @Tags ChangeRequests
// @Accept json
// @Produce json
// @Param id path string true "Change request id"
// @Param payload body dto.ReviewChangeRequestRequest true "Review payload"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /change-requests/{id}/review [post]
func (h *ChangeRequestHandler) Review(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.ReviewChangeRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	request, err := h.service.Review(c.Request.Context(), c.Param("id"), req, claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, request, nil)
}
