package assignment

import (
	"context"

	"courier-dispatch/internal/ports/dispatchtx"
)

// txRunner runs a function within one dispatch transaction. The whole
// scan-then-stamp window of a batch assign lives inside it.
type txRunner interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}
