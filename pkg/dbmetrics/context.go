package dbmetrics

import "context"

type txCtxKey struct{}

// WithExecutor returns a context carrying the given executor. The
// transaction managers use this to hand the open transaction down to
// repositories without changing their signatures.
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, txCtxKey{}, exec)
}

// GetExecutor returns the executor carried by the context, or the
// fallback when the call is not running inside a transaction.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(txCtxKey{}).(DBExecutor); ok {
		return exec
	}
	return fallback
}

// IsInTransaction reports whether the context carries an open
// transaction executor.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(DBExecutor)
	return ok
}
