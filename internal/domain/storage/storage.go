package storage

import "context"

// ObjectStore is the external binary store behind image attach/detach. A store
// is either configured (real credentials) or unconfigured, in which case every
// operation fails fast — there is no placeholder endpoint.
type ObjectStore interface {
	// Put uploads data and returns its public URL.
	Put(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, path string) error
	PublicURL(path string) string
}
