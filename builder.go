package docket

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/alnah/go-docket/internal/assets"
	"github.com/alnah/go-docket/internal/doctree"
	"github.com/alnah/go-docket/internal/fileutil"
	"github.com/alnah/go-docket/internal/highlight"
	"github.com/alnah/go-docket/internal/markdown"
	"github.com/alnah/go-docket/internal/render"
	"github.com/alnah/go-docket/internal/search"
)

// Builder renders source trees into sites. A Builder may run several builds
// in sequence; concurrent builds must target different directories.
type Builder struct {
	log            *zap.Logger
	workers        int
	title          string
	highlightMode  string
	highlightStyle string
	highlighter    highlight.Highlighter
	layout         render.Layout
	assetPath      string
	outlineLevel   int
}

// Result summarizes a finished build.
type Result struct {
	Target  string
	Pages   int
	Assets  int
	Elapsed time.Duration
}

// NewBuilder creates a Builder. It fails when the asset path or the
// highlight settings are invalid.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		log:          zap.NewNop(),
		outlineLevel: render.DefaultOutlineLevel,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.workers = ResolveWorkers(b.workers)

	if b.layout == nil {
		resolver, err := assets.NewResolver(b.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		if b.layout, err = render.NewHTMLLayout(resolver); err != nil {
			return nil, err
		}
	}

	// Surface a bad mode or style now rather than on the first build.
	if b.highlighter == nil {
		if _, err := highlight.New(b.highlightMode, b.highlightStyle); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Workers returns the number of pages rendered concurrently.
func (b *Builder) Workers() int {
	return b.workers
}

// Build renders the tree at source into target. The previous contents of
// target are replaced only when the whole build succeeds.
func (b *Builder) Build(ctx context.Context, source, target string) (*Result, error) {
	start := time.Now()

	source, err := filepath.Abs(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	target, err = filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if fileutil.IsWithin(source, target) {
		return nil, fmt.Errorf("%w: %s contains %s", ErrTargetOverlaps, target, source)
	}

	tree, err := doctree.Open(source,
		doctree.WithLogger(b.log),
		doctree.WithHighlightMode(b.highlightMode),
		doctree.WithExclude(target),
		doctree.WithReservedNames(outputFile),
		doctree.WithReservedRootNames(b.rootFiles()...))
	if err != nil {
		return nil, err
	}

	rc, err := b.context(tree, target)
	if err != nil {
		return nil, err
	}

	staging, err := stage(target)
	if err != nil {
		return nil, err
	}

	w := &walker{
		rc:      rc,
		log:     b.log,
		sem:     semaphore.NewWeighted(int64(b.workers)),
		staging: staging,
	}
	res, err := w.run(ctx, tree)
	if err != nil {
		return nil, discard(staging, err)
	}
	if err := publish(staging, target); err != nil {
		return nil, err
	}

	res.Target = target
	res.Elapsed = time.Since(start)
	b.log.Info("site built",
		zap.String("target", target),
		zap.Int("pages", res.Pages),
		zap.Int("assets", res.Assets),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

// rootFiles lists the files written at the output root, whichever
// highlighter the build ends up using.
func (b *Builder) rootFiles() []string {
	names := []string{search.IndexFile, highlight.StylesheetName}
	for _, f := range b.layout.Assets() {
		names = append(names, f.Name)
	}
	return names
}

// context assembles the render context for one build.
func (b *Builder) context(tree *doctree.Tree, target string) (*render.Context, error) {
	h := b.highlighter
	if h == nil {
		var err error
		if h, err = highlight.New(tree.HighlightMode, b.highlightStyle); err != nil {
			return nil, err
		}
	}

	var mdOpts []markdown.Option
	if c, ok := h.(*highlight.Chroma); ok {
		mdOpts = append(mdOpts, markdown.WithNestedHighlighting(c.StyleName()))
	}

	title := b.title
	if title == "" {
		title = tree.Root.Title
	}

	rc := render.NewContext(title, target, b.layout,
		render.WithHighlighter(h),
		render.WithMarkdown(markdown.New(mdOpts...)),
		render.WithOutlineLevel(b.outlineLevel))

	if tree.Footer != nil {
		src, err := tree.Footer.Load()
		if err != nil {
			return nil, &PageError{Path: tree.Footer.Path, Err: fmt.Errorf("%w: %v", ErrReadSource, err)}
		}
		footer, err := rc.Fragment(src)
		if err != nil {
			return nil, &PageError{Path: tree.Footer.Path, Err: err}
		}
		rc.Footer = footer
	}
	return rc, nil
}
