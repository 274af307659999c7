// Package render turns parsed pages into HTML files.
//
// A Context holds what every page of a build shares and is never mutated
// once built. A State carries the navigation position of one bale and is
// derived from the tree alone, so states for different bales can be used
// from different goroutines.
package render

import (
	"errors"
	"html/template"

	"github.com/alnah/go-docket/internal/highlight"
	"github.com/alnah/go-docket/internal/markdown"
)

// ErrWrite wraps failures to write rendered output.
var ErrWrite = errors.New("writing rendered page")

// DefaultFooter is used when the tree has no footer page.
const DefaultFooter template.HTML = `<p>Rendered by <a href="https://github.com/alnah/go-docket">Docket</a></p>`

// DefaultOutlineLevel is the deepest heading level in the page outline.
const DefaultOutlineLevel = 3

// Context is the immutable, build-wide render configuration.
type Context struct {
	SiteTitle    string
	Footer       template.HTML
	Markdown     *markdown.Markdown
	Highlighter  highlight.Highlighter
	Layout       Layout
	Output       string // output root directory
	OutlineLevel int
}

// ContextOption configures NewContext.
type ContextOption func(*Context)

// WithFooter sets the rendered footer HTML.
func WithFooter(footer template.HTML) ContextOption {
	return func(c *Context) {
		if footer != "" {
			c.Footer = footer
		}
	}
}

// WithHighlighter sets the code block highlighter.
func WithHighlighter(h highlight.Highlighter) ContextOption {
	return func(c *Context) {
		if h != nil {
			c.Highlighter = h
		}
	}
}

// WithMarkdown sets the markdown parser and emitter.
func WithMarkdown(md *markdown.Markdown) ContextOption {
	return func(c *Context) {
		if md != nil {
			c.Markdown = md
		}
	}
}

// WithOutlineLevel sets the deepest heading level in the page outline.
func WithOutlineLevel(level int) ContextOption {
	return func(c *Context) {
		if level > 0 {
			c.OutlineLevel = level
		}
	}
}

// NewContext builds the context for a build writing to output.
func NewContext(siteTitle, output string, layout Layout, opts ...ContextOption) *Context {
	c := &Context{
		SiteTitle:    siteTitle,
		Footer:       DefaultFooter,
		Highlighter:  highlight.None{},
		Layout:       layout,
		Output:       output,
		OutlineLevel: DefaultOutlineLevel,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Markdown == nil {
		c.Markdown = markdown.New()
	}
	return c
}
