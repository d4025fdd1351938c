package projects

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/internal/designs"
	"github.com/JaimeStill/stylarch/pkg/pagination"
	"github.com/JaimeStill/stylarch/pkg/query"
	"github.com/JaimeStill/stylarch/pkg/repository"
	"github.com/JaimeStill/stylarch/pkg/storage"
)

const returning = "RETURNING id, name, type, status, thumbnail, created_at, updated_at"

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
	shareBase  string
}

// New creates a project repository implementing the System interface.
// shareBase is the public origin used to build share links.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
	shareBase string,
) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "projects"),
		pagination: pagination,
		shareBase:  shareBase,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Project], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	result, err := repository.QueryPage(ctx, r.db, qb, page, scanProject)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Project, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanProject)
	if err != nil {
		return nil, dbErrors.Map(err)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Project, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO projects(id, name, type, status, thumbnail)
		VALUES ($1, $2, $3, $4, $5)
		` + returning

	args := []any{uuid.New(), strings.TrimSpace(cmd.Name), cmd.Type, cmd.Status, cmd.Thumbnail}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Project, error) {
		return repository.QueryOne(ctx, tx, q, args, scanProject)
	})
	if err != nil {
		return nil, dbErrors.Map(err)
	}

	r.logger.Info("project created", "id", p.ID, "name", p.Name)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Project, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	var name *string
	if cmd.Name != nil {
		trimmed := strings.TrimSpace(*cmd.Name)
		name = &trimmed
	}

	q := `
		UPDATE projects
		SET name = COALESCE($2, name), status = COALESCE($3, status), updated_at = now()
		WHERE id = $1
		` + returning

	args := []any{id, name, cmd.Status}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Project, error) {
		return repository.QueryOne(ctx, tx, q, args, scanProject)
	})
	if err != nil {
		return nil, dbErrors.Map(err)
	}

	r.logger.Info("project updated", "id", p.ID, "status", p.Status)
	return &p, nil
}

// Delete removes the project row, which cascades to its designs, then purges
// the project's design blobs. Blob failures are logged, not returned.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM projects WHERE id = $1", id)
	})
	if err != nil {
		return dbErrors.Map(err)
	}

	prefix := designs.StoragePrefix(id)
	removed, err := storage.DeletePrefix(ctx, r.storage, prefix)
	if err != nil {
		r.logger.Warn("design blob purge failed after project delete", "prefix", prefix, "removed", removed, "error", err)
	}

	r.logger.Info("project deleted", "id", id, "blobs_removed", removed)
	return nil
}

func (r *repo) Share(ctx context.Context, id uuid.UUID) (*ShareLink, error) {
	p, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ShareLink{URL: ShareURL(r.shareBase, p.Name)}, nil
}

func (c *CreateCommand) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProject)
	}
	if !c.Type.valid() {
		return fmt.Errorf("%w: type %q", ErrInvalidProject, c.Type)
	}
	if c.Status == "" {
		c.Status = StatusDraft
	}
	if !c.Status.valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidProject, c.Status)
	}
	return nil
}

func (c UpdateCommand) validate() error {
	if c.Name == nil && c.Status == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidProject)
	}
	if c.Name != nil && strings.TrimSpace(*c.Name) == "" {
		return fmt.Errorf("%w: name cannot be blank", ErrInvalidProject)
	}
	if c.Status != nil && !c.Status.valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidProject, *c.Status)
	}
	return nil
}
