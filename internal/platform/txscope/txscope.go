// Package txscope marks contexts that run inside a store transaction.
//
// Rows read or written under a marked context are not durable until the
// transaction commits, so shared caches must not keep them.
package txscope

import "context"

type key struct{}

// Enter returns ctx marked as transactional.
func Enter(ctx context.Context) context.Context {
	if Active(ctx) {
		return ctx
	}
	return context.WithValue(ctx, key{}, true)
}

// Active reports whether ctx belongs to an open transaction.
func Active(ctx context.Context) bool {
	v, _ := ctx.Value(key{}).(bool)
	return v
}
