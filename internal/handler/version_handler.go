package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/service"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
	"github.com/campuskit/acadsched-api/pkg/response"
)

// VersionHandler exposes schedule version lifecycle endpoints.
type VersionHandler struct {
	service *service.VersionService
}

// NewVersionHandler constructs a version handler.
func NewVersionHandler(svc *service.VersionService) *VersionHandler {
	return &VersionHandler{service: svc}
}

// List godoc
// @Summary List schedule versions of a term and department
// @Tags Versions
// @Produce json
// @Param termId query string true "Term id"
// @Param departmentId query string true "Department id"
// @Success 200 {object} response.Envelope
// @Router /versions [get]
func (h *VersionHandler) List(c *gin.Context) {
	termID := c.Query("termId")
	departmentID := c.Query("departmentId")
	if termID == "" || departmentID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "termId and departmentId query parameters are required"))
		return
	}
	versions, err := h.service.List(c.Request.Context(), termID, departmentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, versions, nil)
}

// Get godoc
// @Summary Get schedule version
// @Tags Versions
// @Produce json
// @Param id path string true "Version id"
// @Success 200 {object} response.Envelope
// @Router /versions/{id} [get]
func (h *VersionHandler) Get(c *gin.Context) {
	version, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, version, nil)
}

// Create godoc
// @Summary Create draft schedule version
// @Tags Versions
// @Accept json
// @Produce json
// @Param payload body dto.CreateVersionRequest true "Version payload"
// @Success 201 {object} response.Envelope
// @Router /versions [post]
func (h *VersionHandler) Create(c *gin.Context) {
	var req dto.CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	claims := claimsFromContext(c)
	actorID := ""
	if claims != nil {
		actorID = claims.UserID
	}
	version, err := h.service.Create(c.Request.Context(), req, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, version)
}

// Activate godoc
// @Summary Activate schedule version
// @Tags Versions
// @Produce json
// @Param id path string true "Version id"
// @Success 200 {object} response.Envelope
// @Router /versions/{id}/activate [post]
func (h *VersionHandler) Activate(c *gin.Context) {
	version, err := h.service.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, version, nil)
}

// Lock godoc
// @Summary Lock schedule version
// @Tags Versions
// @Produce json
// @Param id path string true "Version id"
// @Success 200 {object} response.Envelope
// @Router /versions/{id}/lock [post]
func (h *VersionHandler) Lock(c *gin.Context) {
	claims := claimsFromContext(c)
	actorID := ""
	if claims != nil {
		actorID = claims.UserID
	}
	version, err := h.service.Lock(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, version, nil)
}

// Archive godoc
// @Summary Archive schedule version
// @Tags Versions
// @Produce json
// @Param id path string true "Version id"
// @Success 200 {object} response.Envelope
// @Router /versions/{id}/archive [post]
func (h *VersionHandler) Archive(c *gin.Context) {
	claims := claimsFromContext(c)
	actorID := ""
	if claims != nil {
		actorID = claims.UserID
	}
	version, err := h.service.Archive(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, version, nil)
}
