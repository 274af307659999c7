package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-docket/internal/highlight"
	"github.com/alnah/go-docket/internal/toc"
)

// Page is a page ready for the layout.
type Page struct {
	Title   string
	Slug    string // "" for a bale index
	Content template.HTML
	Outline template.HTML
	Text    string // content as HTML, for the search index
}

// IsIndex reports whether the page is its bale's index.
func (p *Page) IsIndex() bool {
	return p.Slug == ""
}

// Prepare runs source through the page pipeline: parse, table of contents,
// [TOC] expansion, highlighting, then HTML emission. fallbackTitle is used
// when the page has no leading level-1 heading.
func (c *Context) Prepare(source []byte, slug, fallbackTitle string) (*Page, error) {
	doc := c.Markdown.Parse(source)
	res := toc.Transform(doc)

	events := highlight.Filter(res.Body, c.Highlighter)

	var b strings.Builder
	if err := c.Markdown.Render(&b, doc, events); err != nil {
		return nil, fmt.Errorf("rendering markdown: %w", err)
	}

	title := res.Title
	if title == "" {
		title = fallbackTitle
	}
	body := b.String()
	return &Page{
		Title:   title,
		Slug:    slug,
		Content: template.HTML(body), // #nosec G203 -- rendered markdown
		Outline: template.HTML(res.Tree.Outline(c.OutlineLevel)), // #nosec G203 -- escaped heading text
		Text:    body,
	}, nil
}

// Fragment renders markdown to HTML without layout or outline, as used for
// the footer.
func (c *Context) Fragment(source []byte) (template.HTML, error) {
	p, err := c.Prepare(source, "", "")
	if err != nil {
		return "", err
	}
	return p.Content, nil
}
