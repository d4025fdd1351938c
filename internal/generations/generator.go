package generations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/stylarch/internal/prompts"
	"github.com/JaimeStill/stylarch/pkg/gradio"
)

// Predictor is the subset of the Gradio client used for generation.
type Predictor interface {
	Predict(ctx context.Context, data ...any) ([]json.RawMessage, error)
	DecodeImage(ctx context.Context, raw json.RawMessage) (gradio.Image, error)
}

type generator struct {
	predictor      Predictor
	logger         *slog.Logger
	maxConcurrency int
}

// New creates a generation system. maxConcurrency bounds in-flight predictions
// per request; values below 1 mean one at a time.
func New(predictor Predictor, logger *slog.Logger, maxConcurrency int) System {
	return &generator{
		predictor:      predictor,
		logger:         logger.With("system", "generations"),
		maxConcurrency: max(maxConcurrency, 1),
	}
}

func (g *generator) Handler() *Handler {
	return NewHandler(g, g.logger)
}

func (g *generator) Generate(ctx context.Context, form prompts.FormState) (*Result, error) {
	prompt := prompts.Build(form)
	if prompts.Blank(prompt) {
		return nil, ErrEmptyPrompt
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	images := make([]Image, form.Floors)
	start := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.maxConcurrency)

	for i := range images {
		floorPrompt := FloorPrompt(prompt, i+1, form.Floors)
		eg.Go(func() error {
			img, err := g.predict(egCtx, floorPrompt)
			if err != nil {
				return fmt.Errorf("floor %d: %w", i+1, err)
			}
			images[i] = Image{
				Floor:       i + 1,
				Prompt:      floorPrompt,
				ContentType: img.ContentType,
				Data:        img.Data,
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		g.logger.Error("generation failed", "floors", form.Floors, "error", err)
		return nil, err
	}

	g.logger.Info(
		"generation complete",
		"floors", form.Floors,
		"prompt_length", len(prompt),
		"duration", time.Since(start),
	)

	return &Result{
		Prompt:      prompt,
		Images:      images,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// FloorPrompt is the prompt sent for one level of a multi-storey plan. A
// single-storey plan sends prompt unchanged.
func FloorPrompt(prompt string, floor, floors int) string {
	if floors <= 1 {
		return prompt
	}
	return fmt.Sprintf("%s, %s of a %d-storey building", prompt, levelName(floor), floors)
}

func levelName(floor int) string {
	switch floor {
	case 1:
		return "ground floor"
	case 2:
		return "first floor"
	case 3:
		return "second floor"
	}
	return fmt.Sprintf("floor %d", floor)
}

func (g *generator) predict(ctx context.Context, prompt string) (gradio.Image, error) {
	out, err := g.predictor.Predict(ctx, prompt)
	if err != nil {
		if errors.Is(err, gradio.ErrEmptyResponse) {
			return gradio.Image{}, fmt.Errorf("%w: %w", ErrNoImage, err)
		}
		return gradio.Image{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	img, err := g.predictor.DecodeImage(ctx, out[0])
	if err != nil {
		if errors.Is(err, gradio.ErrNotImage) {
			return gradio.Image{}, fmt.Errorf("%w: %w", ErrNoImage, err)
		}
		return gradio.Image{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return img, nil
}
