package markdown

import (
	"bufio"
	"bytes"
	"fmt"
	"html"
	"io"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Option configures a Markdown instance.
type Option func(*options)

type options struct {
	nestedStyle string
}

// WithNestedHighlighting highlights code blocks that sit inside lists or
// block quotes with the given chroma style. Those blocks are not part of the
// top-level event stream, so the highlight filter never sees them.
func WithNestedHighlighting(style string) Option {
	return func(o *options) {
		o.nestedStyle = style
	}
}

// Markdown turns page source into event streams and event streams into HTML.
// A Markdown is safe for concurrent use.
type Markdown struct {
	gm goldmark.Markdown
}

// New creates a Markdown with GFM (tables, task lists, strikethrough,
// autolinks) and footnotes enabled.
func New(opts ...Option) *Markdown {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	exts := []goldmark.Extender{
		extension.GFM,
		extension.Footnote,
	}
	if o.nestedStyle != "" {
		exts = append(exts, highlighting.NewHighlighting(
			highlighting.WithStyle(o.nestedStyle),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true),
			),
		))
	}

	gm := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(), // authors may embed raw HTML in their pages
		),
	)
	return &Markdown{gm: gm}
}

// Parse parses source into a Document. It never fails: goldmark recovers
// from unterminated blocks and stray markup by treating them as text.
func (m *Markdown) Parse(source []byte) *Document {
	pc := parser.NewContext(parser.WithIDs(newAnchorIDs()))
	root := m.gm.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	return &Document{
		Source: source,
		Root:   root,
		Events: events(root, source),
	}
}

// events flattens the top level of the tree. Headings and code blocks are
// split into start/content/end runs; every other block is a single event.
func events(root ast.Node, source []byte) []Event {
	var out []Event
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			id := headingID(node)
			out = append(out, Event{Kind: HeadingStart, Level: node.Level, ID: id, Node: node})
			for c := node.FirstChild(); c != nil; c = c.NextSibling() {
				out = append(out, Event{Kind: Inline, Node: c})
			}
			out = append(out, Event{Kind: HeadingEnd, Level: node.Level, ID: id, Node: node})
		case *ast.FencedCodeBlock:
			out = appendCode(out, node, string(node.Language(source)), true, source)
		case *ast.CodeBlock:
			out = appendCode(out, node, "", false, source)
		default:
			out = append(out, Event{Kind: Block, Node: node})
		}
	}
	return out
}

func appendCode(out []Event, node ast.Node, info string, fenced bool, source []byte) []Event {
	out = append(out, Event{Kind: CodeStart, Info: info, Fence: fenced, Node: node})
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		out = append(out, Event{Kind: CodeText, Text: string(seg.Value(source))})
	}
	return append(out, Event{Kind: CodeEnd, Info: info, Fence: fenced, Node: node})
}

func headingID(h *ast.Heading) string {
	v, ok := h.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

// Render writes the HTML for events to w. Block and inline nodes are
// rendered by goldmark against doc.Source.
func (m *Markdown) Render(w io.Writer, doc *Document, evs []Event) error {
	bw := bufio.NewWriter(w)
	r := m.gm.Renderer()

	inCode := false
	for _, ev := range evs {
		var err error
		switch ev.Kind {
		case Block, Inline:
			err = r.Render(bw, doc.Source, ev.Node)
		case HeadingStart:
			_, err = fmt.Fprintf(bw, "<h%d id=\"%s\">", ev.Level, html.EscapeString(ev.ID))
		case HeadingEnd:
			_, err = fmt.Fprintf(bw, "<a class=\"anchor\" href=\"#%s\" aria-hidden=\"true\">#</a></h%d>\n",
				html.EscapeString(ev.ID), ev.Level)
		case CodeStart:
			inCode = true
			err = writeCodeOpen(bw, ev.Info)
		case CodeText:
			_, err = bw.WriteString(html.EscapeString(ev.Text))
		case CodeEnd:
			inCode = false
			_, err = bw.WriteString("</code></pre>\n")
		case HTML:
			_, err = bw.WriteString(ev.Text)
		}
		if err != nil {
			return err
		}
	}
	if inCode {
		// A truncated stream still produces balanced markup.
		if _, err := bw.WriteString("</code></pre>\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RenderString is Render into a string.
func (m *Markdown) RenderString(doc *Document, evs []Event) (string, error) {
	var buf bytes.Buffer
	if err := m.Render(&buf, doc, evs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeCodeOpen(w io.StringWriter, lang string) error {
	if lang == "" {
		_, err := w.WriteString("<pre><code>")
		return err
	}
	_, err := w.WriteString("<pre><code class=\"language-" + html.EscapeString(lang) + "\">")
	return err
}
