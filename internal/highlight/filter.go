package highlight

import (
	"strings"

	"github.com/alnah/go-docket/internal/markdown"
)

// legacyMarker prefixes a first code line naming the language, as in
// ":::rust". It predates fenced info strings.
const legacyMarker = ":::"

// Filter returns events with every complete code block replaced by one HTML
// event holding h's output. h is called exactly once per block. Blocks h
// cannot handle, and all blocks when h is nil, are passed through. Events
// outside code blocks are never touched.
func Filter(events []markdown.Event, h Highlighter) []markdown.Event {
	out := make([]markdown.Event, 0, len(events))

	var block []markdown.Event
	for _, ev := range events {
		switch {
		case block == nil && ev.Kind == markdown.CodeStart:
			block = []markdown.Event{ev}
		case block != nil && ev.Kind == markdown.CodeEnd:
			block = append(block, ev)
			out = append(out, rewrite(block, h)...)
			block = nil
		case block != nil:
			block = append(block, ev)
		default:
			out = append(out, ev)
		}
	}
	// An unterminated block is left as it came.
	return append(out, block...)
}

// rewrite handles one block: start event, text events, end event.
func rewrite(block []markdown.Event, h Highlighter) []markdown.Event {
	start, end := block[0], block[len(block)-1]
	body := block[1 : len(block)-1]

	lang := start.Info
	legacy := false
	if lang == "" && len(body) > 0 {
		if l, ok := parseLegacyMarker(body[0].Text); ok {
			lang, legacy = l, true
			body = body[1:]
		}
	}

	if h != nil {
		lines := make([]string, len(body))
		for i, ev := range body {
			lines[i] = ev.Text
		}
		if fragment, err := h.Highlight(lang, lines); err == nil {
			return []markdown.Event{{Kind: markdown.HTML, Text: fragment, Node: start.Node}}
		}
	}

	if !legacy {
		return block
	}
	// The marker line is gone; its language moves to the fence info where a
	// client-side highlighter looks for it.
	start.Info, end.Info = lang, lang
	out := make([]markdown.Event, 0, len(body)+2)
	out = append(out, start)
	out = append(out, body...)
	return append(out, end)
}

func parseLegacyMarker(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, legacyMarker) {
		return "", false
	}
	lang := strings.TrimSpace(strings.TrimPrefix(line, legacyMarker))
	if lang == "" || strings.ContainsAny(lang, " \t") {
		return "", false
	}
	return lang, true
}
