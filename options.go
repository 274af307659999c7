package docket

import (
	"go.uber.org/zap"

	"github.com/alnah/go-docket/internal/highlight"
	"github.com/alnah/go-docket/internal/render"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// WithWorkers sets how many pages render concurrently. Zero or less sizes
// the pool from GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		b.workers = n
	}
}

// WithTitle overrides the site title derived from the source directory.
func WithTitle(title string) Option {
	return func(b *Builder) {
		b.title = title
	}
}

// WithHighlightMode selects the highlighter by mode ("chroma", "client",
// "none") and chroma style. An empty mode selects chroma.
func WithHighlightMode(mode, style string) Option {
	return func(b *Builder) {
		b.highlightMode = mode
		b.highlightStyle = style
	}
}

// WithHighlighter sets the highlighter directly, overriding the mode.
func WithHighlighter(h highlight.Highlighter) Option {
	return func(b *Builder) {
		b.highlighter = h
	}
}

// WithLayout replaces the HTML layout.
func WithLayout(l render.Layout) Option {
	return func(b *Builder) {
		b.layout = l
	}
}

// WithAssetPath loads the page template, stylesheet and scripts from dir,
// falling back to the embedded ones for anything it lacks.
func WithAssetPath(dir string) Option {
	return func(b *Builder) {
		b.assetPath = dir
	}
}

// WithOutlineLevel sets the deepest heading level in the page outline.
func WithOutlineLevel(level int) Option {
	return func(b *Builder) {
		b.outlineLevel = level
	}
}
