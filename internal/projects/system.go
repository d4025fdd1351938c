package projects

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/pkg/pagination"
)

// System defines the public contract for project operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Project], error)

	Find(ctx context.Context, id uuid.UUID) (*Project, error)
	Create(ctx context.Context, cmd CreateCommand) (*Project, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Share(ctx context.Context, id uuid.UUID) (*ShareLink, error)
}
