package storage

import "context"

type prefixed struct {
	base   Storage
	prefix string
}

// Prefixed scopes every key of base under prefix. Closing the returned
// Storage does not close base.
func Prefixed(base Storage, prefix string) Storage {
	if prefix == "" {
		return nopCloser{base}
	}
	return &prefixed{base: base, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.base.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.base.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) Delete(ctx context.Context, key string) error {
	return p.base.Delete(ctx, p.prefix+key)
}

func (p *prefixed) Close() error { return nil }

type nopCloser struct{ Storage }

func (nopCloser) Close() error { return nil }
