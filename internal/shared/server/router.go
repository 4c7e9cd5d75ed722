package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-assist/internal/analyses"
	cognitoauth "resume-assist/internal/auth"
	"resume-assist/internal/jobs"
	"resume-assist/internal/profiles"
	"resume-assist/internal/resumes"
	"resume-assist/internal/shared/config"
	"resume-assist/internal/shared/metrics"
	"resume-assist/internal/shared/server/middleware"
	"resume-assist/internal/shared/server/respond"
)

// llmRateRule throttles the endpoints that spend provider quota.
var llmRateRule = middleware.RateLimitRule{Rate: 0.5, Burst: 5}

// llmPaths are the routes grouped under the LLM rate limit.
var llmPaths = map[string]struct{}{
	"/api/analyze":                        {},
	"/api/tailor":                         {},
	"/upload_resume_for_linkedIn_profile": {},
}

// RouterDeps carries the handlers wired into the engine.
type RouterDeps struct {
	Config          config.Config
	ResumesHandler  *resumes.Handler
	AnalysesHandler *analyses.Handler
	ProfilesHandler *profiles.Handler
	JobsHandler     *jobs.Handler
	CognitoAuth     *cognitoauth.CognitoService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth("/api/health", "/metrics", "/upload_resume_for_linkedIn_profile"),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{"LLM": llmRateRule},
			GroupFor: func(c *gin.Context) string {
				if _, ok := llmPaths[c.Request.URL.Path]; ok {
					return "LLM"
				}
				return ""
			},
		}),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.AnalysesHandler != nil {
		deps.AnalysesHandler.RegisterRoutes(api)
	}
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}

	if deps.ProfilesHandler != nil {
		deps.ProfilesHandler.RegisterRoutes(r)
	}
	if deps.CognitoAuth != nil {
		deps.CognitoAuth.RegisterRoutes(r)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
