package profiles

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-assist/internal/extract"
	"resume-assist/internal/shared/server/respond"
	"resume-assist/internal/shared/telemetry"
)

const maxUploadBytes = 16 << 20

// Handler serves the profile synthesis endpoint.
type Handler struct {
	Service     *Service
	ExtractText func(data []byte, fileName string) (string, error)
}

// NewHandler constructs a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		Service:     service,
		ExtractText: extract.Text,
	}
}

// RegisterRoutes mounts the profile route. The path is part of the
// existing UI contract and is served without authentication.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/upload_resume_for_linkedIn_profile", h.build)
}

func (h *Handler) build(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file exceeds upload limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
		return
	}
	defer file.Close()

	fileName := strings.TrimSpace(header.Filename)
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != ".pdf" && ext != ".txt" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF and TXT files are accepted", nil)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read upload", nil)
		return
	}

	text, err := h.ExtractText(data, fileName)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "extraction_error", "could not extract text from document", nil)
		return
	}

	profile, err := h.Service.Build(c.Request.Context(), text)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "document contained no text", nil)
			return
		}
		telemetry.Error("profiles.build.failed", map[string]any{
			"err":        err.Error(),
			"file_name":  fileName,
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "could not analyze resume", nil)
		return
	}

	respond.OK(c, profile)
}
