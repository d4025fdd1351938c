package generations

import (
	"context"

	"github.com/JaimeStill/stylarch/internal/prompts"
)

// System defines the public contract for generation operations.
type System interface {
	Handler() *Handler
	Generate(ctx context.Context, form prompts.FormState) (*Result, error)
}
