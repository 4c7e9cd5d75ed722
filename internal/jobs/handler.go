package jobs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-assist/internal/shared/server/respond"
	"resume-assist/internal/shared/telemetry"
)

// Handler serves the job feed endpoint.
type Handler struct {
	Feed *Feed
}

// NewHandler constructs a Handler.
func NewHandler(feed *Feed) *Handler {
	return &Handler{Feed: feed}
}

// RegisterRoutes mounts the feed route on the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
}

func (h *Handler) list(c *gin.Context) {
	payload, err := h.Feed.Jobs(c.Request.Context())
	if err != nil {
		telemetry.Error("jobs.list.failed", map[string]any{
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load jobs", nil)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}
