package docket

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/alnah/go-docket/internal/assets"
	"github.com/alnah/go-docket/internal/doctree"
	"github.com/alnah/go-docket/internal/fileutil"
	"github.com/alnah/go-docket/internal/highlight"
	"github.com/alnah/go-docket/internal/render"
	"github.com/alnah/go-docket/internal/search"
)

// outputFile is the file written for every page directory.
const outputFile = "index.html"

// walker renders one tree into a staging directory. Bales are walked
// concurrently; sem bounds how many pages render at once across all of them.
type walker struct {
	rc      *render.Context
	log     *zap.Logger
	sem     *semaphore.Weighted
	staging string
	count   counters
}

// run renders the whole tree and the root files.
func (w *walker) run(ctx context.Context, tree *doctree.Tree) (*Result, error) {
	entries, err := w.bale(ctx, tree.Root, render.RootState(tree.Root))
	if err != nil {
		return nil, err
	}
	if err := w.writeRootFiles(search.Index(entries)); err != nil {
		return nil, err
	}
	return &Result{
		Pages:  int(w.count.pages.Load()),
		Assets: int(w.count.assets.Load()),
	}, nil
}

// bale renders the items of b and everything below them, then b's own
// index once they have all finished. The returned search entries hold the
// bale index first, then each item's entries in sort order, whatever order
// the goroutines finish in.
func (w *walker) bale(ctx context.Context, b *doctree.Bale, st *render.State) ([]search.Entry, error) {
	g, gctx := errgroup.WithContext(ctx)
	parts := make([][]search.Entry, len(b.Items))

	for i, it := range b.Items {
		g.Go(func() error {
			if it.Bale != nil {
				entries, err := w.bale(gctx, it.Bale, st.Child(it.Bale))
				parts[i] = entries
				return err
			}
			e, err := w.page(gctx, it.Page, it.Page.Slug, "", st)
			if err != nil {
				return err
			}
			parts[i] = []search.Entry{e}
			return nil
		})
	}

	g.Go(func() error {
		return w.copyAssets(b, st)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	index, err := w.page(ctx, b.Index, "", b.Path, st)
	if err != nil {
		return nil, err
	}

	entries := []search.Entry{index}
	for _, p := range parts {
		entries = append(entries, p...)
	}
	return entries, nil
}

// page renders one page of the bale st describes. slug is "" for the index;
// dir names a synthesized index in errors.
func (w *walker) page(ctx context.Context, p *doctree.Page, slug, dir string, st *render.State) (search.Entry, error) {
	if err := w.sem.Acquire(ctx, 1); err != nil {
		return search.Entry{}, err
	}
	defer w.sem.Release(1)

	source := p.Path
	if p.Synthesized() {
		source = dir
	}
	fail := func(err error) (search.Entry, error) {
		return search.Entry{}, &PageError{Path: source, Err: err}
	}

	data, err := p.Load()
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadSource, err))
	}

	page, err := w.rc.Prepare(data, slug, p.Title())
	if err != nil {
		return fail(err)
	}
	text := page.Text
	if page.IsIndex() {
		page.Content += render.ChildListing(st)
	}

	var buf bytes.Buffer
	if err := w.rc.Layout.Render(&buf, page, st, w.rc); err != nil {
		return fail(err)
	}

	out := filepath.Join(w.staging, filepath.FromSlash(st.PageURL(page)), outputFile)
	if err := fileutil.WriteFile(out, buf.Bytes()); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	w.count.pages.Add(1)
	w.log.Debug("page rendered",
		zap.String("source", source),
		zap.String("url", st.PageURL(page)))

	return search.NewEntry(st.PageURL(page), page.Title, text), nil
}

// copyAssets copies the bale's non-page files next to its output.
func (w *walker) copyAssets(b *doctree.Bale, st *render.State) error {
	dst := filepath.Join(w.staging, filepath.FromSlash(st.Dir()))
	for _, src := range b.Assets {
		if err := fileutil.CopyInto(src, dst); err != nil {
			if errors.Is(err, fileutil.ErrNotRegular) {
				w.log.Warn("skipping asset", zap.String("path", src), zap.Error(err))
				continue
			}
			return &PageError{Path: src, Err: fmt.Errorf("%w: %v", ErrWriteOutput, err)}
		}
		w.count.assets.Add(1)
	}
	return nil
}

// counters accumulate build totals across goroutines.
type counters struct {
	pages  atomic.Int64
	assets atomic.Int64
}

// writeRootFiles writes the search index, layout assets and highlighter
// stylesheet at the staging root.
func (w *walker) writeRootFiles(index search.Index) error {
	var buf bytes.Buffer
	if err := index.Write(&buf); err != nil {
		return err
	}
	files := []assets.File{{Name: search.IndexFile, Data: buf.Bytes()}}
	files = append(files, w.rc.Layout.Assets()...)

	if ss, ok := w.rc.Highlighter.(highlight.Stylesheeter); ok {
		css, err := ss.Stylesheet()
		if err != nil {
			return err
		}
		files = append(files, assets.File{Name: highlight.StylesheetName, Data: css})
	}

	for _, f := range files {
		if err := fileutil.WriteFile(filepath.Join(w.staging, f.Name), f.Data); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	return nil
}
