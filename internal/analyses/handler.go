package analyses

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-assist/internal/resumes"
	"resume-assist/internal/shared/server/respond"
	"resume-assist/internal/shared/telemetry"
)

// Handler serves analysis and tailoring endpoints.
type Handler struct {
	Service *Service
	Resumes *resumes.Store
}

// NewHandler constructs a Handler.
func NewHandler(service *Service, store *resumes.Store) *Handler {
	return &Handler{Service: service, Resumes: store}
}

// RegisterRoutes mounts analysis routes on the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/tailor", h.tailor)
}

type analyzeRequest struct {
	ResumeID       string `json:"resume_id"`
	JobDescription string `json:"job_description"`
}

type tailorRequest struct {
	ResumeID       string   `json:"resume_id"`
	JobDescription string   `json:"job_description"`
	Keywords       []string `json:"keywords"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.ResumeID) == "" || strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume_id and job_description are required", nil)
		return
	}

	resumeText, err := h.Resumes.Get(c.Request.Context(), req.ResumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		return
	}

	analysis, err := h.Service.Analyze(c.Request.Context(), resumeText, req.JobDescription)
	if err != nil {
		telemetry.Error("analyses.analyze.failed", map[string]any{
			"err":        err.Error(),
			"resume_id":  req.ResumeID,
			"request_id": c.GetString("requestId"),
		})
		if errors.Is(err, ErrBadResponse) {
			respond.Error(c, http.StatusInternalServerError, "llm_error", "analysis response could not be parsed", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "llm_error", "failed to analyze resume", nil)
		return
	}

	respond.OK(c, analysis)
}

func (h *Handler) tailor(c *gin.Context) {
	var req tailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.ResumeID) == "" || strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume_id and job_description are required", nil)
		return
	}

	resumeText, err := h.Resumes.Get(c.Request.Context(), req.ResumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		return
	}

	tailored, err := h.Service.Tailor(c.Request.Context(), resumeText, req.JobDescription, req.Keywords)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to tailor resume", nil)
		return
	}

	respond.OK(c, tailored)
}
