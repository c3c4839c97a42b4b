package completion

import (
	"context"

	"courier-dispatch/internal/ports/dispatchtx"
)

// txRunner runs a function within one dispatch transaction so the completion
// stamp and the metrics recompute land together or not at all.
type txRunner interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}
