package domain

import "context"

// TxManager runs a function inside a single database transaction. Stores used
// within fn observe and mutate state atomically; an error from fn rolls the
// transaction back. Implementations may re-run fn on transient aborts, so fn
// must be safe to execute more than once.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
