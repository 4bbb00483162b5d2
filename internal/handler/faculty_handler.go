package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/acadsched-api/internal/models"
	"github.com/campuskit/acadsched-api/internal/service"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
	"github.com/campuskit/acadsched-api/pkg/response"
)

// FacultyHandler exposes faculty directory endpoints.
type FacultyHandler struct {
	service *service.FacultyService
}

func NewFacultyHandler(svc *service.FacultyService) *FacultyHandler {
	return &FacultyHandler{service: svc}
}

// List godoc
// @Summary List faculty members
// @Tags Faculty
// @Produce json
// @Param departmentId query string false "Filter by department"
// @Param role query string false "Filter by faculty role"
// @Param search query string false "Match against name or email"
// @Success 200 {object} response.Envelope
// @Router /faculty [get]
func (h *FacultyHandler) List(c *gin.Context) {
	filter := models.FacultyFilter{
		DepartmentID: c.Query("departmentId"),
		Role:         models.FacultyRole(c.Query("role")),
		Search:       c.Query("search"),
		SortBy:       c.DefaultQuery("sort", "last_name"),
		SortOrder:    c.DefaultQuery("order", "asc"),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	faculty, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, faculty, pagination)
}

// Get godoc
// @Summary Get faculty member with teaching profile
// @Tags Faculty
// @Produce json
// @Param id path string true "Faculty user id"
// @Success 200 {object} response.Envelope
// @Router /faculty/{id} [get]
func (h *FacultyHandler) Get(c *gin.Context) {
	user, profile, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"faculty": user, "profile": profile}, nil)
}

// UpsertProfile godoc
// @Summary Create or update a faculty teaching profile
// @Tags Faculty
// @Accept json
// @Produce json
// @Param id path string true "Faculty user id"
// @Param payload body service.UpsertFacultyProfileRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Router /faculty/{id}/profile [put]
func (h *FacultyHandler) UpsertProfile(c *gin.Context) {
	var req service.UpsertFacultyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	profile, err := h.service.UpsertProfile(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile, nil)
}
