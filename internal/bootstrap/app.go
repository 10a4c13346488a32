package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"ats-resume/internal/evaluations"
	"ats-resume/internal/generatedresumes"
	"ats-resume/internal/llm"
	"ats-resume/internal/llm/gemini"
	"ats-resume/internal/llm/openai"
	"ats-resume/internal/shared/config"
	"ats-resume/internal/shared/metrics"
	"ats-resume/internal/shared/server"
	"ats-resume/internal/shared/storage/object"
	localstore "ats-resume/internal/shared/storage/object/local"
	s3store "ats-resume/internal/shared/storage/object/s3"
	"ats-resume/internal/shared/telemetry"
	"ats-resume/resume/document"
)

// App holds the wired dependencies of the API server.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	Pipeline *evaluations.Pipeline
	Metrics  *metrics.Metrics

	closers []func()
}

// Close releases connections opened by Build.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// Build wires storage, the model client and the HTTP routes from cfg.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	client, err := NewLLMClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return build(ctx, cfg, client, prometheus.NewRegistry())
}

func build(ctx context.Context, cfg config.Config, client llm.Client, reg *prometheus.Registry) (*App, error) {
	m, err := metrics.New(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	app := &App{Config: cfg, Metrics: m}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	repo, err := app.buildGeneratedRepo(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	pipeline, err := NewPipeline(cfg, client, m)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Pipeline = pipeline

	generatedSvc := generatedresumes.NewService(repo, store, cfg.GeneratedResumeTTL)
	evaluationSvc := evaluations.NewService(pipeline, generatedSvc, m)

	app.Router = server.NewRouter(cfg, m,
		evaluations.NewHandler(evaluationSvc),
		generatedresumes.NewHandler(generatedSvc),
	)

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"llm_provider": cfg.LLMProvider,
		"llm_model":    cfg.LLMModel,
		"object_store": cfg.ObjectStoreType,
		"valkey":       cfg.ValkeyURL != "",
	})
	return app, nil
}

// NewLLMClient returns the model client for the configured provider.
func NewLLMClient(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	case config.ProviderGemini, "":
		return gemini.New(ctx, cfg.GoogleAPIKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s", cfg.LLMProvider)
	}
}

// NewPipeline builds the evaluation pipeline around client with the default retry schedule.
func NewPipeline(cfg config.Config, client llm.Client, m *metrics.Metrics) (*evaluations.Pipeline, error) {
	logo, err := document.LoadLogo(cfg.LogoPath)
	if err != nil {
		return nil, fmt.Errorf("load logo: %w", err)
	}
	evaluator := llm.NewEvaluator(client, llm.DefaultRetryPolicy, m)
	return evaluations.NewPipeline(evaluator, document.NewBuilder(logo)), nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case config.StoreS3:
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func (a *App) buildGeneratedRepo(ctx context.Context, cfg config.Config) (generatedresumes.Repo, error) {
	if cfg.ValkeyURL == "" {
		return generatedresumes.NewMemoryRepo(), nil
	}
	client, err := generatedresumes.NewValkeyClient(ctx, cfg.ValkeyURL, cfg.ValkeyPassword)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)
	return generatedresumes.NewValkeyRepo(client), nil
}
