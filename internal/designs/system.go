package designs

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/stylarch/pkg/pagination"
	"github.com/JaimeStill/stylarch/pkg/storage"
)

// System defines the public contract for design library operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Design], error)

	Find(ctx context.Context, id uuid.UUID) (*Design, error)
	Create(ctx context.Context, cmd CreateCommand) (*Design, error)

	// Download opens the design's blob. The caller must close the result body.
	Download(ctx context.Context, id uuid.UUID) (*Design, *storage.BlobResult, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// ExportPDF combines image designs into a PDF with one page per image, in the order given.
	ExportPDF(ctx context.Context, ids []uuid.UUID) ([]byte, error)
}
