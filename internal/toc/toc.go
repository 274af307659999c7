// Package toc builds a nested heading tree from a page's event stream.
//
// The tree keeps every event of the page: flattening it in document order
// gives back the original stream. The same tree is used to emit the page
// body, the sidebar outline and the in-page [TOC] listings.
package toc

import (
	"github.com/alnah/go-docket/internal/markdown"
)

// Heading is the heading that opens an interior entry.
type Heading struct {
	Level  int
	ID     string
	Text   string           // plain text, used for links
	Events []markdown.Event // HeadingStart through HeadingEnd, inclusive
}

// Entry is either a content run (Heading == nil) holding consecutive
// non-heading events, or a heading with nested entries.
type Entry struct {
	Heading  *Heading
	Events   []markdown.Event
	Children []*Entry
}

// IsHeading reports whether e is an interior heading entry.
func (e *Entry) IsHeading() bool {
	return e.Heading != nil
}

// Tree is the heading tree of one page.
type Tree struct {
	Entries []*Entry
	source  []byte
}

// Result is the output of Transform.
type Result struct {
	Tree  *Tree
	Title string
	Body  []markdown.Event
}

// Transform builds the heading tree for doc, extracts the page title and
// produces the body stream with [TOC] markers expanded. It never fails.
func Transform(doc *markdown.Document) *Result {
	tree := Build(doc.Events, doc.Source)
	return &Result{
		Tree:  tree,
		Title: tree.Title(),
		Body:  tree.Expand(),
	}
}

// Build nests events under their headings. A heading at level L closes every
// open heading at level L or deeper.
func Build(events []markdown.Event, source []byte) *Tree {
	root := &Entry{}
	stack := []stackItem{{entry: root, level: 0}}

	var open *Heading
	for _, ev := range events {
		if open != nil {
			open.Events = append(open.Events, ev)
			if ev.Kind == markdown.HeadingEnd {
				open = nil
			}
			continue
		}

		if ev.Kind == markdown.HeadingStart {
			level := ev.Level
			for len(stack) > 1 && stack[len(stack)-1].level >= level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1].entry

			open = &Heading{Level: level, ID: ev.ID, Events: []markdown.Event{ev}}
			if ev.Node != nil {
				open.Text = markdown.PlainText(ev.Node, source)
			}
			entry := &Entry{Heading: open}
			parent.Children = append(parent.Children, entry)
			stack = append(stack, stackItem{entry: entry, level: level})
			continue
		}

		top := stack[len(stack)-1].entry
		appendContent(top, ev)
	}

	entries := root.Children
	if len(entries) == 0 {
		entries = []*Entry{{}}
	}
	return &Tree{Entries: entries, source: source}
}

type stackItem struct {
	entry *Entry
	level int
}

func appendContent(parent *Entry, ev markdown.Event) {
	n := len(parent.Children)
	if n > 0 && !parent.Children[n-1].IsHeading() {
		last := parent.Children[n-1]
		last.Events = append(last.Events, ev)
		return
	}
	parent.Children = append(parent.Children, &Entry{Events: []markdown.Event{ev}})
}

// Title returns the text of the first heading if it is level 1.
func (t *Tree) Title() string {
	if h := firstHeading(t.Entries); h != nil && h.Level == 1 {
		return h.Text
	}
	return ""
}

func firstHeading(entries []*Entry) *Heading {
	for _, e := range entries {
		if e.IsHeading() {
			return e.Heading
		}
	}
	return nil
}

// Flatten returns the events of the tree in document order. The result is
// identical to the stream the tree was built from.
func (t *Tree) Flatten() []markdown.Event {
	var out []markdown.Event
	walk(t.Entries, nil, func(ev markdown.Event, _ []frame) {
		out = append(out, ev)
	})
	return out
}

// Expand is Flatten with every [TOC] marker replaced by an HTML link list.
func (t *Tree) Expand() []markdown.Event {
	var out []markdown.Event
	walk(t.Entries, nil, func(ev markdown.Event, path []frame) {
		if depth, ok := parseMarker(ev, t.source); ok {
			out = append(out, markdown.Event{
				Kind: markdown.HTML,
				Text: renderList(following(path), depth, "toc"),
			})
			return
		}
		out = append(out, ev)
	})
	return out
}

// frame records a position: the entry list being walked and the index of
// the current entry within it.
type frame struct {
	entries []*Entry
	index   int
}

func walk(entries []*Entry, path []frame, emit func(markdown.Event, []frame)) {
	for i, e := range entries {
		here := append(path[:len(path):len(path)], frame{entries: entries, index: i})
		if !e.IsHeading() {
			for _, ev := range e.Events {
				emit(ev, here)
			}
			continue
		}
		for _, ev := range e.Heading.Events {
			emit(ev, here)
		}
		walk(e.Children, here, emit)
	}
}

// following returns the headings listed by a marker at path: the first
// heading after the marker together with its later siblings. Walking up the
// path finds the nearest enclosing heading that still has headings after
// the marker's position.
func following(path []frame) []*Entry {
	for i := len(path) - 1; i >= 0; i-- {
		f := path[i]
		var out []*Entry
		for _, e := range f.entries[f.index+1:] {
			if e.IsHeading() {
				out = append(out, e)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
