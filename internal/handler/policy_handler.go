package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/service"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
	"github.com/campuskit/acadsched-api/pkg/response"
)

// PolicyHandler exposes scheduling policy endpoints.
type PolicyHandler struct {
	service *service.PolicyService
}

func NewPolicyHandler(svc *service.PolicyService) *PolicyHandler {
	return &PolicyHandler{service: svc}
}

// ListByTerm godoc
// @Summary List policies for a term
// @Tags Policies
// @Produce json
// @Param termId query string true "Term id, or GLOBAL for defaults"
// @Success 200 {object} response.Envelope
// @Router /policies [get]
func (h *PolicyHandler) ListByTerm(c *gin.Context) {
	termID := c.Query("termId")
	if termID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "termId query parameter is required"))
		return
	}
	policies, err := h.service.ListByTerm(c.Request.Context(), termID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, policies, nil)
}

// Resolve godoc
// @Summary Resolve a policy value for a term
// @Description Falls back to the GLOBAL scope when the term has no override.
// @Tags Policies
// @Produce json
// @Param termId query string true "Term id"
// @Param key path string true "Policy key"
// @Success 200 {object} response.Envelope
// @Router /policies/{key} [get]
func (h *PolicyHandler) Resolve(c *gin.Context) {
	termID := c.Query("termId")
	if termID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "termId query parameter is required"))
		return
	}
	policy, err := h.service.Resolve(c.Request.Context(), termID, c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, policy, nil)
}

// Upsert godoc
// @Summary Create or update a policy
// @Tags Policies
// @Accept json
// @Produce json
// @Param payload body dto.UpsertPolicyRequest true "Policy payload"
// @Success 200 {object} response.Envelope
// @Router /policies [put]
func (h *PolicyHandler) Upsert(c *gin.Context) {
	var req dto.UpsertPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	policy, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, policy, nil)
}
