package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenroute/carbon-backend-go/internal/service"
	"github.com/greenroute/carbon-backend-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for analysis and summaries
type AnalysisHandler struct {
	analysis *service.AnalysisService
	summary  *service.SummaryService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysis *service.AnalysisService, summary *service.SummaryService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis, summary: summary}
}

// Analyze handles POST /api/v1/analysis/:subjectID/:date
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	subjectID := c.Param("subjectID")
	date := c.Param("date")
	force := c.Query("force") == "true"

	daily, err := h.analysis.Analyze(c.Request.Context(), subjectID, date, force)
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			response.NotFound(c, "No GPS data for the requested date")
			return
		}
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, daily)
}

// AnalyzeRange handles POST /api/v1/analysis/:subjectID/range
func (h *AnalysisHandler) AnalyzeRange(c *gin.Context) {
	subjectID := c.Param("subjectID")
	start := c.Query("start")
	end := c.Query("end")
	force := c.Query("force") == "true"

	if start == "" || end == "" {
		response.BadRequest(c, "start and end query parameters are required")
		return
	}

	result, err := h.analysis.AnalyzeRange(c.Request.Context(), subjectID, start, end, force)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}

// Summary handles GET /api/v1/analysis/:subjectID/summary
func (h *AnalysisHandler) Summary(c *gin.Context) {
	subjectID := c.Param("subjectID")
	start := c.Query("start")
	end := c.Query("end")

	if start == "" || end == "" {
		response.BadRequest(c, "start and end query parameters are required")
		return
	}

	summary, err := h.summary.Summarize(subjectID, start, end)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(c, summary)
}
