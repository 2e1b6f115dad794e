package migrate

import (
	"context"
	"unicode/utf8"

	"github.com/fwojciec/wprefactor"
)

// Rewriter applies an in-place pass to every *.html file of a directory.
type Rewriter struct {
	Loader wprefactor.Loader
	Writer wprefactor.PageWriter
}

// FileResult holds the outcome of rewriting one file. Sizes are counted
// in characters.
type FileResult struct {
	Path    string
	Before  int
	After   int
	Changed bool
	Err     error
}

// Reduction returns how many characters the pass removed.
func (r *FileResult) Reduction() int {
	return r.Before - r.After
}

// DirResult holds the outcome of a directory pass.
type DirResult struct {
	Files  []*FileResult
	Failed int
}

// Reduction returns how many characters the pass removed across all
// successfully rewritten files.
func (r *DirResult) Reduction() int {
	var n int
	for _, f := range r.Files {
		if f.Err == nil {
			n += f.Reduction()
		}
	}
	return n
}

// FileFunc is called after each file of a directory pass.
type FileFunc func(*FileResult)

// CleanDir runs cleaner over every *.html file in dir and writes back the
// files it changed. Returns ENOTFOUND if dir does not exist or holds no
// HTML files. Per-file failures are recorded and the pass continues.
func (r *Rewriter) CleanDir(ctx context.Context, dir string, cleaner wprefactor.Cleaner, progress FileFunc) (*DirResult, error) {
	files, err := r.Loader.List(ctx, dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, wprefactor.Errorf(wprefactor.ENOTFOUND, "no HTML files found in %q", dir)
	}
	return r.rewrite(ctx, files, func(s string) (string, error) {
		return cleaner.Clean(s), nil
	}, progress)
}

// FormatDir pretty-prints every *.html file in dir. A missing or empty
// directory formats nothing. Per-file failures are recorded and the pass
// continues.
func (r *Rewriter) FormatDir(ctx context.Context, dir string, formatter wprefactor.Formatter, progress FileFunc) (*DirResult, error) {
	files, err := r.Loader.List(ctx, dir)
	if wprefactor.ErrorCode(err) == wprefactor.ENOTFOUND {
		return &DirResult{}, nil
	} else if err != nil {
		return nil, err
	}
	return r.rewrite(ctx, files, formatter.Format, progress)
}

func (r *Rewriter) rewrite(ctx context.Context, files []string, fn func(string) (string, error), progress FileFunc) (*DirResult, error) {
	res := &DirResult{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		fr := r.rewriteFile(ctx, path, fn)
		if fr.Err != nil {
			res.Failed++
		}
		res.Files = append(res.Files, fr)
		if progress != nil {
			progress(fr)
		}
	}
	return res, nil
}

func (r *Rewriter) rewriteFile(ctx context.Context, path string, fn func(string) (string, error)) *FileResult {
	fr := &FileResult{Path: path}

	content, err := r.Loader.Load(ctx, path)
	if err != nil {
		fr.Err = err
		return fr
	}
	fr.Before = utf8.RuneCountInString(content)

	out, err := fn(content)
	if err != nil {
		fr.Err = err
		return fr
	}
	fr.After = utf8.RuneCountInString(out)

	if out == content {
		return fr
	}
	if err := r.Writer.WritePage(ctx, path, out); err != nil {
		fr.Err = err
		return fr
	}
	fr.Changed = true
	return fr
}
