// Package storage provides the key-value substrate the finance aggregates
// persist into: one key per aggregate, JSON-serialized values.
package storage

import "context"

// Store is the persistence port. Get reports ok=false for an absent key;
// callers are expected to fall back to their documented default rather than
// treat that as an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
