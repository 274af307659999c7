// Package highlight rewrites code blocks in a page's event stream into
// pre-highlighted HTML.
//
// The filter is independent of the engine: a Highlighter either returns a
// styled fragment or ErrUnsupported, in which case the block is left for a
// client-side highlighter.
package highlight

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnsupported means the highlighter cannot handle the block; the
	// filter passes it through unchanged.
	ErrUnsupported = errors.New("highlighting not supported")

	ErrUnknownMode  = errors.New("unknown highlight mode")
	ErrUnknownStyle = errors.New("unknown highlight style")
)

// Modes accepted by New.
const (
	ModeChroma = "chroma" // build time, via chroma
	ModeClient = "client" // in the browser, via highlight.js
	ModeNone   = "none"   // plain code blocks
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// Highlighter turns the lines of one code block into a styled HTML fragment.
// lang is "" when the block carries no language hint.
type Highlighter interface {
	Highlight(lang string, lines []string) (string, error)
}

// Func adapts a function to the Highlighter interface.
type Func func(lang string, lines []string) (string, error)

// Highlight calls f.
func (f Func) Highlight(lang string, lines []string) (string, error) {
	return f(lang, lines)
}

// HeadWriter is implemented by highlighters that need markup in the page
// <head>, such as a stylesheet link or a script tag. root is the relative
// path from the page to the site root.
type HeadWriter interface {
	Head(root string) string
}

// Stylesheeter is implemented by highlighters whose output needs a CSS file
// written at the site root under StylesheetName.
type Stylesheeter interface {
	Stylesheet() ([]byte, error)
}

// StylesheetName is the output file written for a Stylesheeter.
const StylesheetName = "highlight.css"

// Head returns the head markup for h, or "" when h needs none.
func Head(h Highlighter, root string) string {
	if hw, ok := h.(HeadWriter); ok {
		return hw.Head(root)
	}
	return ""
}

// New returns the highlighter for mode. An empty mode selects chroma.
func New(mode, style string) (Highlighter, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto", ModeChroma:
		return NewChroma(style)
	case ModeClient, "js":
		return Client{}, nil
	case ModeNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (must be chroma, client, or none)", ErrUnknownMode, mode)
	}
}

// None never highlights. Code blocks stay plain and no script is added.
type None struct{}

// Highlight implements Highlighter.
func (None) Highlight(string, []string) (string, error) {
	return "", ErrUnsupported
}

// Client leaves every block to highlight.js running in the browser.
type Client struct{}

// Highlight implements Highlighter.
func (Client) Highlight(string, []string) (string, error) {
	return "", ErrUnsupported
}

const highlightJSBase = "https://cdnjs.cloudflare.com/ajax/libs/highlight.js/11.9.0/"

// Head implements HeadWriter.
func (Client) Head(string) string {
	return `<link rel="stylesheet" href="` + highlightJSBase + `styles/github.min.css">` +
		`<script src="` + highlightJSBase + `highlight.min.js"></script>` +
		`<script>hljs.highlightAll();</script>`
}

// Compile-time interface checks.
var (
	_ Highlighter = None{}
	_ Highlighter = Client{}
	_ HeadWriter  = Client{}
	_ Highlighter = Func(nil)
)
