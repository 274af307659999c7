package highlight

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Chroma highlights at build time. Output uses CSS classes; the matching
// rules come from Stylesheet.
type Chroma struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChroma creates a Chroma highlighter for the named style. An empty name
// selects DefaultStyle.
func NewChroma(style string) (*Chroma, error) {
	if style == "" {
		style = DefaultStyle
	}
	s, ok := styles.Registry[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	return &Chroma{
		style:     s,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}, nil
}

// StyleName returns the configured chroma style name.
func (c *Chroma) StyleName() string {
	return c.style.Name
}

// Highlight implements Highlighter. Blocks without a language, or with one
// chroma does not know, are unsupported.
func (c *Chroma) Highlight(lang string, lines []string) (string, error) {
	if lang == "" {
		return "", ErrUnsupported
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", fmt.Errorf("%w: language %q", ErrUnsupported, lang)
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, strings.Join(lines, ""))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupported, err)
	}

	var buf bytes.Buffer
	if err := c.formatter.Format(&buf, c.style, it); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return buf.String(), nil
}

// Head implements HeadWriter.
func (c *Chroma) Head(root string) string {
	return `<link rel="stylesheet" href="` + root + StylesheetName + `">`
}

// Stylesheet implements Stylesheeter.
func (c *Chroma) Stylesheet() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.formatter.WriteCSS(&buf, c.style); err != nil {
		return nil, fmt.Errorf("writing %s: %w", StylesheetName, err)
	}
	return buf.Bytes(), nil
}

// Compile-time interface checks.
var (
	_ Highlighter  = (*Chroma)(nil)
	_ HeadWriter   = (*Chroma)(nil)
	_ Stylesheeter = (*Chroma)(nil)
)

// StyleNames lists the registered chroma styles, sorted.
func StyleNames() []string {
	return styles.Names()
}
