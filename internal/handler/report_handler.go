package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/acadsched-api/internal/service"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
	"github.com/campuskit/acadsched-api/pkg/response"
)

// ReportHandler exposes the scheduling report endpoints.
type ReportHandler struct {
	reports *service.ReportService
	exports *service.ExportService
}

// NewReportHandler constructs a report handler.
func NewReportHandler(reports *service.ReportService, exports *service.ExportService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

func (h *ReportHandler) versionID(c *gin.Context) (string, bool) {
	versionID := c.Query("versionId")
	if versionID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "versionId query parameter is required"))
		return "", false
	}
	return versionID, true
}

func reportMeta(cacheHit bool, start time.Time) map[string]interface{} {
	return map[string]interface{}{
		"cache_hit":          cacheHit,
		"processing_time_ms": time.Since(start).Milliseconds(),
	}
}

// FacultyLoad godoc
// @Summary Faculty load report
// @Tags Reports
// @Produce json
// @Param versionId query string true "Schedule version id"
// @Success 200 {object} response.Envelope
// @Router /reports/faculty-load [get]
func (h *ReportHandler) FacultyLoad(c *gin.Context) {
	versionID, ok := h.versionID(c)
	if !ok {
		return
	}
	start := time.Now()
	rows, cacheHit, err := h.reports.FacultyLoad(c.Request.Context(), versionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil, reportMeta(cacheHit, start))
}

// RoomUtilization godoc
// @Summary Room utilization report
// @Tags Reports
// @Produce json
// @Param versionId query string true "Schedule version id"
// @Success 200 {object} response.Envelope
// @Router /reports/room-utilization [get]
func (h *ReportHandler) RoomUtilization(c *gin.Context) {
	versionID, ok := h.versionID(c)
	if !ok {
		return
	}
	start := time.Now()
	rows, cacheHit, err := h.reports.RoomUtilization(c.Request.Context(), versionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil, reportMeta(cacheHit, start))
}

// Conflicts godoc
// @Summary Scheduling conflicts report
// @Tags Reports
// @Produce json
// @Param versionId query string true "Schedule version id"
// @Success 200 {object} response.Envelope
// @Router /reports/conflicts [get]
func (h *ReportHandler) Conflicts(c *gin.Context) {
	versionID, ok := h.versionID(c)
	if !ok {
		return
	}
	start := time.Now()
	items, cacheHit, err := h.reports.Conflicts(c.Request.Context(), versionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil, reportMeta(cacheHit, start))
}

// Schedule godoc
// @Summary Flat schedule report
// @Tags Reports
// @Produce json
// @Param versionId query string true "Schedule version id"
// @Success 200 {object} response.Envelope
// @Router /reports/schedule [get]
func (h *ReportHandler) Schedule(c *gin.Context) {
	versionID, ok := h.versionID(c)
	if !ok {
		return
	}
	start := time.Now()
	rows, cacheHit, err := h.reports.ScheduleRows(c.Request.Context(), versionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil, reportMeta(cacheHit, start))
}

// Export godoc
// @Summary Download a report as CSV or PDF
// @Tags Reports
// @Produce octet-stream
// @Param report path string true "Report name" Enums(faculty-load, room-utilization, conflicts, schedule)
// @Param versionId query string true "Schedule version id"
// @Param format query string false "Export format" Enums(csv, pdf) default(csv)
// @Success 200 {file} binary
// @Router /reports/{report}/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	versionID, ok := h.versionID(c)
	if !ok {
		return
	}
	format := c.DefaultQuery("format", service.ExportFormatCSV)
	result, err := h.exports.Generate(c.Request.Context(), c.Param("report"), format, versionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
