package interpretations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/internal/designs"
	"github.com/JaimeStill/stylarch/pkg/render"
)

// Library stores reports in a project's design library.
type Library interface {
	Create(ctx context.Context, cmd designs.CreateCommand) (*designs.Design, error)
}

// System defines the public contract for floor plan interpretation.
type System interface {
	Handler(maxUploadSize int64) *Handler

	// Interpret analyzes img and returns a rendered report.
	Interpret(ctx context.Context, img Image) (*Report, error)

	// Save stores the report's markdown in the project's design library and
	// records the resulting design on the report.
	Save(ctx context.Context, projectID uuid.UUID, report *Report) error
}

type interpreter struct {
	backend Interpreter
	library Library
	logger  *slog.Logger
}

// New creates an interpretation System backed by backend. Reports are saved through library.
func New(backend Interpreter, library Library, logger *slog.Logger) System {
	return &interpreter{
		backend: backend,
		library: library,
		logger:  logger.With("system", "interpretations"),
	}
}

func (s *interpreter) Handler(maxUploadSize int64) *Handler {
	return NewHandler(s, s.logger, maxUploadSize)
}

func (s *interpreter) Interpret(ctx context.Context, img Image) (*Report, error) {
	if len(img.Data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrInvalidImage)
	}
	if !acceptedType(img.ContentType) {
		return nil, fmt.Errorf("%w: unsupported type %s", ErrInvalidImage, img.ContentType)
	}

	start := time.Now()
	markdown, err := s.backend.Interpret(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAnalysisFailed, s.backend.Name(), err)
	}

	html, err := render.Markdown(markdown)
	if err != nil {
		return nil, fmt.Errorf("%w: render report: %w", ErrAnalysisFailed, err)
	}

	s.logger.Info(
		"floor plan interpreted",
		"backend", s.backend.Name(),
		"filename", img.Filename,
		"size_bytes", len(img.Data),
		"duration", time.Since(start),
	)

	return &Report{
		Markdown:   markdown,
		HTML:       html,
		Filename:   ReportFilename,
		Backend:    s.backend.Name(),
		AnalyzedAt: time.Now().UTC(),
	}, nil
}

func (s *interpreter) Save(ctx context.Context, projectID uuid.UUID, report *Report) error {
	d, err := s.library.Create(ctx, designs.CreateCommand{
		ProjectID:   projectID,
		Kind:        designs.KindReport,
		Filename:    report.Filename,
		ContentType: ReportContentType,
		Data:        []byte(report.Markdown),
	})
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	report.Design = d
	return nil
}

func acceptedType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/webp":
		return true
	}
	return false
}
