package api

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/JaimeStill/stylarch/internal/config"
	"github.com/JaimeStill/stylarch/internal/infrastructure"
	"github.com/JaimeStill/stylarch/internal/interpretations"
	"github.com/JaimeStill/stylarch/pkg/gradio"
	"github.com/JaimeStill/stylarch/pkg/middleware"
	"github.com/JaimeStill/stylarch/pkg/pagination"
)

const discoveryTimeout = 10 * time.Second

// Runtime extends Infrastructure with the API's external backends.
// Verifier is nil when auth is disabled.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination  pagination.Config
	Gradio      *gradio.Client
	Interpreter interpretations.Interpreter
	Verifier    middleware.TokenVerifier
}

// NewRuntime creates an API runtime with a module-scoped logger and
// constructs the generation, interpretation, and auth backends.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) (*Runtime, error) {
	logger := infra.Logger.With("module", "api")

	interpreter, err := newInterpreter(infra.Lifecycle.Context(), &cfg.Interpreter)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Pagination:  cfg.API.Pagination,
		Gradio:      gradio.New(&cfg.Generator.Gradio, logger),
		Interpreter: interpreter,
	}

	if cfg.API.Auth.IsEnabled() {
		ctx, cancel := context.WithTimeout(infra.Lifecycle.Context(), discoveryTimeout)
		defer cancel()

		verifier, err := middleware.NewOIDCVerifier(ctx, cfg.API.Auth.Issuer, cfg.API.Auth.ClientID)
		if err != nil {
			return nil, err
		}
		rt.Verifier = verifier
	}

	logger.Info(
		"api runtime initialized",
		"interpreter", interpreter.Name(),
		"gradio", cfg.Generator.Gradio.BaseURL,
		"auth", cfg.API.Auth.IsEnabled(),
	)
	return rt, nil
}

func newInterpreter(ctx context.Context, cfg *config.InterpreterConfig) (interpretations.Interpreter, error) {
	switch cfg.Backend {
	case config.BackendGenAI:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create genai client: %w", err)
		}
		return interpretations.NewGemini(client, cfg.Model, cfg.Temperature, cfg.MaxOutputTokens), nil
	default:
		return interpretations.NewStatic(cfg.DelayDuration()), nil
	}
}
