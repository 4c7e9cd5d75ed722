package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-assist/internal/analyses"
	cognitoauth "resume-assist/internal/auth"
	"resume-assist/internal/jobs"
	"resume-assist/internal/llm"
	"resume-assist/internal/llm/gemini"
	"resume-assist/internal/llm/openai"
	"resume-assist/internal/profiles"
	"resume-assist/internal/queue"
	"resume-assist/internal/resumes"
	"resume-assist/internal/shared/config"
	"resume-assist/internal/shared/server"
	"resume-assist/internal/shared/storage/cache"
	"resume-assist/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	ResumeCache cache.KV
	JobsCache   cache.KV

	ResumesRepo  resumes.Repo
	ResumesStore *resumes.Store

	AnalysesService *analyses.Service
	ProfilesService *profiles.Service
	JobsFeed        *jobs.Feed

	ResumesHandler  *resumes.Handler
	AnalysesHandler *analyses.Handler
	ProfilesHandler *profiles.Handler
	JobsHandler     *jobs.Handler
	CognitoAuth     *cognitoauth.CognitoService
}

// Build prepares shared dependencies and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	resumeCache, err := buildCache(ctx, cfg.RedisAddr, cfg.RedisPassword, "resumes")
	if err != nil {
		return nil, err
	}
	jobsCache, err := buildCache(ctx, cfg.JobsRedisAddr, cfg.JobsRedisPassword, "jobs")
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:      cfg,
		DB:          sqlDB,
		ResumeCache: resumeCache,
		JobsCache:   jobsCache,
	}
	if err := buildServices(ctx, app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		ResumesHandler:  app.ResumesHandler,
		AnalysesHandler: app.AnalysesHandler,
		ProfilesHandler: app.ProfilesHandler,
		JobsHandler:     app.JobsHandler,
		CognitoAuth:     app.CognitoAuth,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

// buildCache returns a Redis-backed KV when an address is configured and
// an in-process KV otherwise. The two caches are kept separate so the
// job feed can live on its own Redis in production.
func buildCache(ctx context.Context, addr, password, name string) (cache.KV, error) {
	if strings.TrimSpace(addr) == "" {
		log.Printf("bootstrap: %s cache not configured; using in-memory cache", name)
		return cache.NewMemory(), nil
	}
	kv, err := cache.NewRedis(ctx, addr, password)
	if err != nil {
		return nil, fmt.Errorf("connect %s cache: %w", name, err)
	}
	return kv, nil
}

func buildServices(ctx context.Context, app *App) error {
	cfg := app.Config

	var resumesRepo resumes.Repo
	if app.DB != nil {
		resumesRepo = &resumes.PGRepo{DB: app.DB}
	} else {
		resumesRepo = resumes.NewMemoryRepo()
	}
	resumesStore := resumes.NewStore(resumesRepo, app.ResumeCache)

	geminiGen := llm.Generator(llm.Placeholder{})
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fmt.Errorf("init gemini client: %w", err)
		}
		geminiGen = client
	}

	openaiGen := llm.Generator(llm.Placeholder{})
	if cfg.OpenAIAPIKey != "" {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return fmt.Errorf("init openai client: %w", err)
		}
		openaiGen = client
	}

	receiver, err := buildReceiver(ctx, cfg)
	if err != nil {
		return err
	}
	feed := jobs.NewFeed(receiver, app.JobsCache, cfg.JobsTriggerURL)
	feed.Freshness = cfg.JobsFreshness
	feed.CacheTTL = cfg.JobsCacheTTL

	app.ResumesRepo = resumesRepo
	app.ResumesStore = resumesStore
	app.AnalysesService = analyses.NewService(llm.Instrument(geminiGen))
	app.ProfilesService = profiles.NewService(llm.Instrument(openaiGen))
	app.JobsFeed = feed

	app.ResumesHandler = resumes.NewHandler(resumesStore)
	app.AnalysesHandler = analyses.NewHandler(app.AnalysesService, resumesStore)
	app.ProfilesHandler = profiles.NewHandler(app.ProfilesService)
	app.JobsHandler = jobs.NewHandler(feed)
	app.CognitoAuth = cognitoauth.NewCognitoService(
		cfg.CognitoClientID,
		cfg.CognitoClientSecret,
		cfg.CognitoDomain,
		cfg.CognitoRedirectURL,
		cfg.CognitoLogoutURL,
		cfg.UIRedirectURL,
	)
	return nil
}

func buildReceiver(ctx context.Context, cfg config.Config) (queue.Receiver, error) {
	if strings.TrimSpace(cfg.SQSQueueURL) == "" {
		log.Printf("bootstrap: SQS_QUEUE_URL empty; job feed will serve cache only")
		return emptyReceiver{}, nil
	}
	return queue.NewSQSReceiver(ctx, cfg.AWSRegion, cfg.SQSQueueURL)
}

// emptyReceiver stands in when no queue is configured.
type emptyReceiver struct{}

func (emptyReceiver) Receive(ctx context.Context, maxMessages int32) ([]queue.Batch, error) {
	return nil, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
