package designs

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/stylarch/pkg/pagination"
	"github.com/JaimeStill/stylarch/pkg/query"
	"github.com/JaimeStill/stylarch/pkg/repository"
	"github.com/JaimeStill/stylarch/pkg/storage"
)

const (
	maxExport         = 50
	exportConcurrency = 4
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a design repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "designs"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Design], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename", "Prompt", "ProjectName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	result, err := repository.QueryPage(ctx, r.db, qb, page, scanDesign)
	if err != nil {
		return nil, fmt.Errorf("list designs: %w", err)
	}
	return result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Design, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDesign)
	if err != nil {
		return nil, dbErrors.Map(err)
	}
	return &d, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Design, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	filename := sanitizeFilename(cmd.Filename, cmd.ContentType)
	key := buildStorageKey(cmd.ProjectID, id, filename)

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload design blob: %w", err)
	}

	q := `
		INSERT INTO designs(id, project_id, kind, prompt, filename, content_type, size_bytes, storage_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx, q,
			id, cmd.ProjectID, cmd.Kind, cmd.Prompt, filename, cmd.ContentType, int64(len(cmd.Data)), key,
		); err != nil {
			return struct{}{}, err
		}
		_, err := tx.ExecContext(ctx, "UPDATE projects SET updated_at = now() WHERE id = $1", cmd.ProjectID)
		return struct{}{}, err
	})

	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, dbErrors.Map(err)
	}

	r.logger.Info("design created", "id", id, "project_id", cmd.ProjectID, "kind", cmd.Kind)
	return r.Find(ctx, id)
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (*Design, *storage.BlobResult, error) {
	d, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	blob, err := r.storage.Download(ctx, d.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: blob missing for %s", ErrNotFound, id)
		}
		return nil, nil, fmt.Errorf("download design blob: %w", err)
	}

	return d, blob, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	d, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM designs WHERE id = $1", id)
	})
	if err != nil {
		return dbErrors.Map(err)
	}

	if delErr := r.storage.Delete(ctx, d.StorageKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB delete",
			"key", d.StorageKey,
			"error", delErr,
		)
	}

	r.logger.Info("design deleted", "id", id)
	return nil
}

func (r *repo) ExportPDF(ctx context.Context, ids []uuid.UUID) ([]byte, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no designs selected", ErrInvalidDesign)
	}
	if len(ids) > maxExport {
		return nil, fmt.Errorf("%w: at most %d designs per export", ErrInvalidDesign, maxExport)
	}

	images := make([][]byte, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			d, blob, err := r.Download(gctx, id)
			if err != nil {
				return err
			}
			defer blob.Body.Close()

			if d.Kind != KindImage {
				return fmt.Errorf("%w: %s", ErrNotImage, id)
			}

			data, err := io.ReadAll(blob.Body)
			if err != nil {
				return fmt.Errorf("read design %s: %w", id, err)
			}
			images[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	pdf, err := combineImages(images)
	if err != nil {
		return nil, err
	}

	r.logger.Info("designs exported", "count", len(ids), "size_bytes", len(pdf))
	return pdf, nil
}

func (c CreateCommand) validate() error {
	if c.ProjectID == uuid.Nil {
		return fmt.Errorf("%w: project_id is required", ErrInvalidDesign)
	}
	if len(c.Data) == 0 {
		return fmt.Errorf("%w: empty content", ErrInvalidDesign)
	}
	switch c.Kind {
	case KindImage:
		if !strings.HasPrefix(c.ContentType, "image/") {
			return fmt.Errorf("%w: content type %q", ErrNotImage, c.ContentType)
		}
	case KindReport:
	default:
		return fmt.Errorf("%w: kind %q", ErrInvalidDesign, c.Kind)
	}
	return nil
}

func sanitizeFilename(name, contentType string) string {
	name = filepath.Base(name)
	if name == "." || name == "/" || name == "" {
		name = "floor-plan" + extensionFor(contentType)
	}
	return url.PathEscape(name)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "text/markdown", "text/markdown; charset=utf-8":
		return ".md"
	}
	return ""
}
