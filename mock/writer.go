package mock

import (
	"context"

	"github.com/fwojciec/wprefactor"
)

var (
	_ wprefactor.PageWriter = (*PageWriter)(nil)
	_ wprefactor.PageStore  = (*PageStore)(nil)
)

// PageWriter is a mock implementation of wprefactor.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, path, content string) error
}

func (w *PageWriter) WritePage(ctx context.Context, path, content string) error {
	return w.WritePageFn(ctx, path, content)
}

// PageStore is a mock implementation of wprefactor.PageStore.
type PageStore struct {
	WritePageFn func(ctx context.Context, path, content string) error
	CommitFn    func() error
	AbortFn     func() error
}

func (s *PageStore) WritePage(ctx context.Context, path, content string) error {
	return s.WritePageFn(ctx, path, content)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
