// Package storagemock records object-store calls so tests can assert the
// upload-then-compensate ordering.
package storagemock

import (
	"context"
	"errors"
)

type Store struct {
	PutFn    func(ctx context.Context, path string, data []byte, contentType string) (string, error)
	RemoveFn func(ctx context.Context, path string) error

	// Call log, appended in order: "put:<path>" and "remove:<path>".
	Calls []string
}

func (m *Store) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	m.Calls = append(m.Calls, "put:"+path)
	if m.PutFn != nil {
		return m.PutFn(ctx, path, data, contentType)
	}
	return "https://store.example/" + path, nil
}

func (m *Store) Remove(ctx context.Context, path string) error {
	m.Calls = append(m.Calls, "remove:"+path)
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, path)
	}
	return nil
}

func (m *Store) PublicURL(path string) string { return "https://store.example/" + path }

// Orphans reports the paths that were put but never removed.
func (m *Store) Orphans() []string {
	removed := map[string]bool{}
	for _, c := range m.Calls {
		if len(c) > 7 && c[:7] == "remove:" {
			removed[c[7:]] = true
		}
	}
	var out []string
	for _, c := range m.Calls {
		if len(c) > 4 && c[:4] == "put:" && !removed[c[4:]] {
			out = append(out, c[4:])
		}
	}
	return out
}

var ErrUnavailable = errors.New("object store unavailable")
