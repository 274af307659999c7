package toc

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-docket/internal/markdown"
)

// markerPattern matches a [TOC] paragraph with an optional depth argument.
var markerPattern = regexp.MustCompile(`^\[TOC(?:\s+([^\]]*?))?\s*\]$`)

// parseMarker reports whether ev is a [TOC] paragraph and returns its depth.
// Depth 0 means unbounded; malformed arguments are treated as unbounded.
func parseMarker(ev markdown.Event, source []byte) (int, bool) {
	if ev.Kind != markdown.Block || ev.Node == nil {
		return 0, false
	}
	m := markerPattern.FindStringSubmatch(markdown.ParagraphText(ev.Node, source))
	if m == nil {
		return 0, false
	}
	depth, err := strconv.Atoi(strings.TrimSpace(m[1]))
	if err != nil || depth < 1 {
		return 0, true
	}
	return depth, true
}

// renderList renders entries as nested <ul> links, descending at most depth
// levels (0 = unbounded).
func renderList(entries []*Entry, depth int, class string) string {
	var b strings.Builder
	writeList(&b, entries, depth, class, func(*Heading) bool { return true })
	return b.String()
}

func writeList(b *strings.Builder, entries []*Entry, depth int, class string, keep func(*Heading) bool) {
	var items []*Entry
	for _, e := range entries {
		if e.IsHeading() && keep(e.Heading) {
			items = append(items, e)
		}
	}
	if len(items) == 0 {
		return
	}

	if class != "" {
		b.WriteString(`<ul class="` + class + `">`)
	} else {
		b.WriteString("<ul>")
	}
	for _, e := range items {
		b.WriteString(`<li><a href="#`)
		b.WriteString(html.EscapeString(e.Heading.ID))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(e.Heading.Text))
		b.WriteString("</a>")
		if depth != 1 {
			next := 0
			if depth > 1 {
				next = depth - 1
			}
			writeList(b, e.Children, next, "", keep)
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
}

// Outline renders the sidebar listing of the page's headings up to
// maxLevel (h1..h6). When the page has a single top-level heading with
// children, typically its title, the listing starts below it.
func (t *Tree) Outline(maxLevel int) string {
	entries := t.Entries
	if hs := headings(entries); len(hs) == 1 && len(headings(hs[0].Children)) > 0 {
		entries = hs[0].Children
	}

	var b strings.Builder
	writeList(&b, entries, 0, "toc", func(h *Heading) bool {
		return maxLevel <= 0 || h.Level <= maxLevel
	})
	return b.String()
}

func headings(entries []*Entry) []*Entry {
	var out []*Entry
	for _, e := range entries {
		if e.IsHeading() {
			out = append(out, e)
		}
	}
	return out
}
