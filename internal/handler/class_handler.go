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

// ClassHandler exposes class offering and meeting endpoints.
type ClassHandler struct {
	service *service.ClassService
}

// NewClassHandler constructs a class handler.
func NewClassHandler(svc *service.ClassService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// List godoc
// @Summary List class offerings
// @Tags Classes
// @Produce json
// @Param termId query string false "Filter by term"
// @Param versionId query string false "Filter by schedule version"
// @Param sectionId query string false "Filter by section"
// @Param facultyId query string false "Filter by faculty member"
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	filter := models.ClassFilter{
		TermID:       c.Query("termId"),
		DepartmentID: c.Query("departmentId"),
		VersionID:    c.Query("versionId"),
		SectionID:    c.Query("sectionId"),
		SubjectID:    c.Query("subjectId"),
		FacultyID:    c.Query("facultyId"),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.PageSize = size
	}

	offerings, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, offerings, pagination)
}

// Get godoc
// @Summary Get class offering with meetings
// @Tags Classes
// @Produce json
// @Param id path string true "Class id"
// @Success 200 {object} response.Envelope
// @Router /classes/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	offering, meetings, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"class": offering, "meetings": meetings}, nil)
}

// Create godoc
// @Summary Create class offering
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body dto.CreateClassRequest true "Class payload"
// @Success 201 {object} response.Envelope
// @Router /classes [post]
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	offering, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, offering)
}

// Update godoc
// @Summary Reassign class faculty
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path string true "Class id"
// @Param payload body dto.UpdateClassRequest true "Update payload"
// @Success 200 {object} response.Envelope
// @Router /classes/{id} [patch]
func (h *ClassHandler) Update(c *gin.Context) {
	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	offering, err := h.service.UpdateFaculty(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, offering, nil)
}

// Delete godoc
// @Summary Delete class offering
// @Tags Classes
// @Param id path string true "Class id"
// @Success 204
// @Router /classes/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateMeeting godoc
// @Summary Schedule a class meeting
// @Description Creates a meeting after a conflict pre-check; introduced conflicts are returned with 409.
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body dto.CreateMeetingRequest true "Meeting payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /meetings [post]
func (h *ClassHandler) CreateMeeting(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	meeting, conflicts, err := h.service.CreateMeeting(c.Request.Context(), req)
	if err != nil {
		if len(conflicts) > 0 {
			appErr := appErrors.FromError(err)
			c.JSON(appErr.Status, response.Envelope{Error: appErr, Data: gin.H{"conflicts": conflicts}})
			return
		}
		response.Error(c, err)
		return
	}
	response.Created(c, meeting)
}

// UpdateMeeting godoc
// @Summary Move or retag a class meeting
// @Tags Classes
// @Accept json
// @Produce json
// @Param id path string true "Meeting id"
// @Param payload body dto.UpdateMeetingRequest true "Update payload"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /meetings/{id} [patch]
func (h *ClassHandler) UpdateMeeting(c *gin.Context) {
	var req dto.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	meeting, conflicts, err := h.service.UpdateMeeting(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if len(conflicts) > 0 {
			appErr := appErrors.FromError(err)
			c.JSON(appErr.Status, response.Envelope{Error: appErr, Data: gin.H{"conflicts": conflicts}})
			return
		}
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, meeting, nil)
}

// DeleteMeeting godoc
// @Summary Delete class meeting
// @Tags Classes
// @Param id path string true "Meeting id"
// @Success 204
// @Router /meetings/{id} [delete]
func (h *ClassHandler) DeleteMeeting(c *gin.Context) {
	if err := h.service.DeleteMeeting(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
