package markdown

import (
	"strings"
	"testing"
)

func kinds(evs []Event) []Kind {
	out := make([]Kind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}
	return out
}

func TestParse_EventKinds(t *testing.T) {
	t.Parallel()

	src := "# Title\n\nIntro paragraph.\n\n```go\nfmt.Println(1)\nreturn\n```\n\n    indented\n\n## Next\n"
	doc := New().Parse([]byte(src))

	want := []Kind{
		HeadingStart, Inline, HeadingEnd,
		Block,
		CodeStart, CodeText, CodeText, CodeEnd,
		CodeStart, CodeText, CodeEnd,
		HeadingStart, Inline, HeadingEnd,
	}
	got := kinds(doc.Events)
	if len(got) != len(want) {
		t.Fatalf("len(Events) = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Events[%d].Kind = %v, want %v", i, got[i], want[i])
		}
	}

	if doc.Events[4].Info != "go" || !doc.Events[4].Fence {
		t.Errorf("fenced CodeStart = %+v, want Info go and Fence", doc.Events[4])
	}
	if doc.Events[8].Fence {
		t.Error("indented CodeStart.Fence = true, want false")
	}
	if doc.Events[5].Text != "fmt.Println(1)\n" {
		t.Errorf("CodeText = %q, want %q", doc.Events[5].Text, "fmt.Println(1)\n")
	}
}

func TestParse_HeadingIDsAreUnique(t *testing.T) {
	t.Parallel()

	doc := New().Parse([]byte("## Usage\n\n## Usage\n\n## Ünïcode Title!\n\n## ***\n"))

	var ids []string
	for _, ev := range doc.Events {
		if ev.Kind == HeadingStart {
			ids = append(ids, ev.ID)
		}
	}

	want := []string{"usage", "usage-1", "unicode-title"}
	for i, w := range want {
		if i >= len(ids) || ids[i] != w {
			t.Fatalf("heading IDs = %v, want prefix %v", ids, want)
		}
	}
}

func TestDocument_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"first heading level one", "# Hello *World*\n\ntext\n", "Hello World"},
		{"first heading level two", "## Sub\n\n# Late\n", ""},
		{"no headings", "just text\n", ""},
		{"setext heading", "Setext\n======\n", "Setext"},
		{"inline code kept", "# Using `go test`\n", "Using go test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := New().Parse([]byte(tt.src)).Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	md := New()
	doc := md.Parse([]byte("## Hello *World*\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n```\n<tag>\n```\n"))

	got, err := md.RenderString(doc, doc.Events)
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}

	for _, want := range []string{
		`<h2 id="hello-world">Hello <em>World</em><a class="anchor" href="#hello-world"`,
		"</h2>",
		"<table>",
		"<pre><code>&lt;tag&gt;\n</code></pre>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderString() missing %q\ngot:\n%s", want, got)
		}
	}
}

func TestRender_HTMLEventPassedThrough(t *testing.T) {
	t.Parallel()

	md := New()
	doc := md.Parse(nil)
	got, err := md.RenderString(doc, []Event{{Kind: HTML, Text: "<div class=\"x\">raw</div>"}})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	if got != "<div class=\"x\">raw</div>" {
		t.Errorf("RenderString() = %q", got)
	}
}

func TestRender_UnterminatedCodeStreamIsClosed(t *testing.T) {
	t.Parallel()

	md := New()
	doc := md.Parse(nil)
	got, err := md.RenderString(doc, []Event{
		{Kind: CodeStart, Info: "sh"},
		{Kind: CodeText, Text: "ls\n"},
	})
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	want := "<pre><code class=\"language-sh\">ls\n</code></pre>\n"
	if got != want {
		t.Errorf("RenderString() = %q, want %q", got, want)
	}
}

func TestParagraphText(t *testing.T) {
	t.Parallel()

	doc := New().Parse([]byte("  [TOC 2]  \n\n- item\n"))
	if got := ParagraphText(doc.Events[0].Node, doc.Source); got != "[TOC 2]" {
		t.Errorf("ParagraphText() = %q, want %q", got, "[TOC 2]")
	}
	if got := ParagraphText(doc.Events[1].Node, doc.Source); got != "" {
		t.Errorf("ParagraphText(list) = %q, want empty", got)
	}
}
