package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/acadsched-api/internal/service"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
	"github.com/campuskit/acadsched-api/pkg/response"
)

// DepartmentHandler exposes department and program endpoints.
type DepartmentHandler struct {
	service *service.DepartmentService
}

func NewDepartmentHandler(svc *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: svc}
}

type departmentPayload struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// List godoc
// @Summary List departments
// @Tags Departments
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	departments, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, departments, nil)
}

// Get godoc
// @Summary Get department by id
// @Tags Departments
// @Produce json
// @Param id path string true "Department id"
// @Success 200 {object} response.Envelope
// @Router /departments/{id} [get]
func (h *DepartmentHandler) Get(c *gin.Context) {
	department, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, department, nil)
}

// Create godoc
// @Summary Create department
// @Tags Departments
// @Accept json
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req departmentPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	department, err := h.service.Create(c.Request.Context(), req.Code, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, department)
}

// ListPrograms godoc
// @Summary List programs under a department
// @Tags Departments
// @Produce json
// @Param id path string true "Department id"
// @Success 200 {object} response.Envelope
// @Router /departments/{id}/programs [get]
func (h *DepartmentHandler) ListPrograms(c *gin.Context) {
	programs, err := h.service.ListPrograms(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, programs, nil)
}

// CreateProgram godoc
// @Summary Create program under a department
// @Tags Departments
// @Accept json
// @Produce json
// @Param id path string true "Department id"
// @Success 201 {object} response.Envelope
// @Router /departments/{id}/programs [post]
func (h *DepartmentHandler) CreateProgram(c *gin.Context) {
	var req departmentPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	program, err := h.service.CreateProgram(c.Request.Context(), c.Param("id"), req.Code, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, program)
}
