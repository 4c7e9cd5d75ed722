package resumes

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
	"resume-assist/internal/shared/util"
)

// maxUploadBytes caps multipart resume uploads at 16 MiB.
const maxUploadBytes = 16 << 20

// Handler serves resume upload endpoints.
type Handler struct {
	Store       *Store
	ExtractText func(data []byte, fileName string) (string, error)
}

// NewHandler constructs a Handler backed by the given store.
func NewHandler(store *Store) *Handler {
	return &Handler{
		Store:       store,
		ExtractText: extract.Text,
	}
}

// RegisterRoutes mounts resume routes on the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume", h.upload)
}

type uploadResponse struct {
	ResumeID string `json:"resume_id"`
	Message  string `json:"message"`
}

func (h *Handler) upload(c *gin.Context) {
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

	fileName, err := util.SanitizeFileName(header.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF files are accepted", nil)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file exceeds upload limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read upload", nil)
		return
	}

	text, err := h.ExtractText(data, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrExtraction) {
			respond.Error(c, http.StatusBadRequest, "extraction_error", "could not extract text from document", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process document", nil)
		return
	}

	resume, err := h.Store.Put(c.Request.Context(), text, fileName)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "document contained no text", nil)
			return
		}
		telemetry.Error("resumes.upload.failed", map[string]any{
			"err":        err.Error(),
			"file_name":  fileName,
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store resume", nil)
		return
	}

	respond.JSON(c, http.StatusOK, uploadResponse{
		ResumeID: resume.ID,
		Message:  "Resume uploaded successfully",
	})
}
