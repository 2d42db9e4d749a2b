package ports

import "context"

// TxManager runs fn atomically: a game transition's save and event append
// either both land or neither does.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
