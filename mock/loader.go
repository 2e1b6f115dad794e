package mock

import (
	"context"

	"github.com/fwojciec/wprefactor"
)

var _ wprefactor.Loader = (*Loader)(nil)

// Loader is a mock implementation of wprefactor.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, path string) (string, error)
	ListFn func(ctx context.Context, dir string) ([]string, error)
}

func (l *Loader) Load(ctx context.Context, path string) (string, error) {
	return l.LoadFn(ctx, path)
}

func (l *Loader) List(ctx context.Context, dir string) ([]string, error) {
	return l.ListFn(ctx, dir)
}
