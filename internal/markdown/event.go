package markdown

import "github.com/yuin/goldmark/ast"

// Kind identifies the type of an Event.
type Kind uint8

// Event kinds. Heading and code block events always come in balanced
// start/end pairs.
const (
	// Block is any top-level block other than a heading or code block.
	Block Kind = iota + 1
	// HeadingStart opens a heading; Level and ID are set.
	HeadingStart
	// Inline is one inline node of the enclosing heading.
	Inline
	// HeadingEnd closes the heading opened by the matching HeadingStart.
	HeadingEnd
	// CodeStart opens a fenced or indented code block; Info holds the
	// language hint, if any.
	CodeStart
	// CodeText is one source line of a code block, newline included.
	CodeText
	// CodeEnd closes a code block.
	CodeEnd
	// HTML is a pre-rendered fragment written to the output as is.
	HTML
)

var kindNames = [...]string{
	Block:        "block",
	HeadingStart: "heading-start",
	Inline:       "inline",
	HeadingEnd:   "heading-end",
	CodeStart:    "code-start",
	CodeText:     "code-text",
	CodeEnd:      "code-end",
	HTML:         "html",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Event is one element of a page's parse stream.
//
// Events are comparable with ==, node identity included, which is what the
// round trip through a TOC tree relies on.
type Event struct {
	Kind  Kind
	Level int    // heading level
	ID    string // heading anchor
	Info  string // code block language hint
	Text  string // code line or HTML fragment
	Fence bool   // code block was fenced rather than indented
	Node  ast.Node
}

// Document is a parsed page: the source bytes the nodes point into, the
// goldmark tree, and the flat event stream derived from it.
type Document struct {
	Source []byte
	Root   ast.Node
	Events []Event
}

// Title returns the plain text of the first heading when that heading is
// level 1, and "" otherwise.
func (d *Document) Title() string {
	for _, ev := range d.Events {
		if ev.Kind != HeadingStart {
			continue
		}
		if ev.Level != 1 || ev.Node == nil {
			return ""
		}
		return PlainText(ev.Node, d.Source)
	}
	return ""
}
