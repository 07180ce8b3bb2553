package tx

import "context"

// Manager groups several store writes into one logical unit. Stores that
// cannot offer atomicity fall back to NoopManager and rely on idempotent
// re-evaluation instead.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
