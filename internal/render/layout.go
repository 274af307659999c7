package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/alnah/go-docket/internal/assets"
	"github.com/alnah/go-docket/internal/highlight"
)

// Layout writes a full HTML document for one page.
type Layout interface {
	Render(w io.Writer, page *Page, st *State, ctx *Context) error

	// Assets returns the files the layout's pages reference, written at the
	// output root.
	Assets() []assets.File
}

// HTMLLayout renders pages through an html/template page template.
type HTMLLayout struct {
	tmpl  *template.Template
	files []assets.File
}

// layoutFiles maps output names to the assets they are loaded from.
var layoutFiles = []struct {
	out  string
	kind assets.Kind
	name string
}{
	{"style.css", assets.Style, assets.DefaultStyleName},
	{"search.js", assets.Script, assets.SearchScriptName},
	{"dark.js", assets.Script, assets.DarkScriptName},
}

// NewHTMLLayout loads the page template and the site assets from loader.
func NewHTMLLayout(loader assets.Loader) (*HTMLLayout, error) {
	src, err := loader.Load(assets.Template, assets.DefaultTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	tmpl, err := template.New(assets.DefaultTemplateName).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	files := make([]assets.File, 0, len(layoutFiles))
	for _, f := range layoutFiles {
		content, err := loader.Load(f.kind, f.name)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", f.out, err)
		}
		files = append(files, assets.File{Name: f.out, Data: []byte(content)})
	}

	return &HTMLLayout{tmpl: tmpl, files: files}, nil
}

// link is a resolved navigation link as the template sees it.
type link struct {
	Title   string
	Href    string
	Current bool
}

type layoutData struct {
	SiteTitle   string
	Title       string
	Root        string
	Head        template.HTML
	Breadcrumbs []link
	Bale        link
	Nav         []link
	Siblings    []link
	Outline     template.HTML
	Content     template.HTML
	Footer      template.HTML
}

// Render implements Layout.
func (l *HTMLLayout) Render(w io.Writer, page *Page, st *State, ctx *Context) error {
	root := st.RootPath(page)
	balePath := st.BalePath(page)

	data := layoutData{
		SiteTitle: ctx.SiteTitle,
		Title:     page.Title,
		Root:      root,
		Head:      template.HTML(highlight.Head(ctx.Highlighter, root)), // #nosec G203 -- fixed markup from the highlighter
		Bale:      link{Title: st.Bale.Title, Href: balePath, Current: page.IsIndex()},
		Outline:   page.Outline,
		Content:   page.Content,
		Footer:    ctx.Footer,
	}

	// Breadcrumb i links to the bale i levels below the root.
	extra := pageDepth(page)
	for i, crumb := range st.Breadcrumbs {
		title := crumb.Title
		if i == 0 && ctx.SiteTitle != "" {
			title = ctx.SiteTitle
		}
		data.Breadcrumbs = append(data.Breadcrumbs, link{
			Title: title,
			Href:  up(st.Depth() - i + extra),
		})
	}

	for _, child := range st.Children {
		data.Nav = append(data.Nav, link{
			Title:   child.Title,
			Href:    balePath + child.Slug + "/",
			Current: !page.IsIndex() && child.Slug == page.Slug,
		})
	}
	for _, sib := range st.Siblings {
		data.Siblings = append(data.Siblings, link{
			Title:   sib.Title,
			Href:    balePath + "../" + sib.Slug + "/",
			Current: sib.Slug == st.Bale.Slug,
		})
	}

	if err := l.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Assets implements Layout.
func (l *HTMLLayout) Assets() []assets.File {
	return l.files
}

// ChildListing renders the links from a bale's index to its children.
func ChildListing(st *State) template.HTML {
	if len(st.Children) == 0 {
		return ""
	}
	var b []byte
	b = append(b, `<ul class="child-listing">`...)
	for _, child := range st.Children {
		b = append(b, `<li><a href="./`...)
		b = append(b, template.HTMLEscapeString(child.Slug)...)
		b = append(b, `/">`...)
		b = append(b, template.HTMLEscapeString(child.Title)...)
		b = append(b, "</a></li>"...)
	}
	b = append(b, "</ul>\n"...)
	return template.HTML(b) // #nosec G203 -- escaped above
}

// Compile-time interface check.
var _ Layout = (*HTMLLayout)(nil)
