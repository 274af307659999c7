package render

import (
	"path"
	"strings"

	"github.com/alnah/go-docket/internal/doctree"
)

// NavItem is a navigation link. Slug is relative to the bale holding the
// item; it is "" for a bale's own index.
type NavItem struct {
	Title string
	Slug  string
}

// State is the navigation position of one bale.
type State struct {
	Bale NavItem

	// Path holds the slugs from the root to the bale, empty at the root.
	Path []string

	// Breadcrumbs runs from the root bale to this one, inclusive.
	Breadcrumbs []NavItem

	// Siblings are the items of the parent bale, this one included. Empty
	// at the root.
	Siblings []NavItem

	// Children are the bale's own items in sort order.
	Children []NavItem
}

// RootState returns the state for the root bale.
func RootState(root *doctree.Bale) *State {
	self := NavItem{Title: root.Title}
	return &State{
		Bale:        self,
		Breadcrumbs: []NavItem{self},
		Children:    navItems(root),
	}
}

// Child returns the state for b, an item of the bale s describes.
func (s *State) Child(b *doctree.Bale) *State {
	self := NavItem{Title: b.Title, Slug: b.Slug}

	p := make([]string, len(s.Path), len(s.Path)+1)
	copy(p, s.Path)
	crumbs := make([]NavItem, len(s.Breadcrumbs), len(s.Breadcrumbs)+1)
	copy(crumbs, s.Breadcrumbs)

	return &State{
		Bale:        self,
		Path:        append(p, b.Slug),
		Breadcrumbs: append(crumbs, self),
		Siblings:    s.Children,
		Children:    navItems(b),
	}
}

// Depth is the number of bales between the root and this one.
func (s *State) Depth() int {
	return len(s.Path)
}

// Dir is the bale's output directory relative to the root, slash separated,
// "" at the root.
func (s *State) Dir() string {
	return path.Join(s.Path...)
}

// URL is the bale's link from the site root, with a trailing slash.
func (s *State) URL() string {
	if len(s.Path) == 0 {
		return ""
	}
	return s.Dir() + "/"
}

// PageURL is the link from the site root to a page of this bale.
func (s *State) PageURL(p *Page) string {
	if p.IsIndex() {
		return s.URL()
	}
	return s.URL() + p.Slug + "/"
}

// RootPath returns the relative path from page p to the site root.
func (s *State) RootPath(p *Page) string {
	return up(s.Depth() + pageDepth(p))
}

// BalePath returns the relative path from page p to its bale's index.
func (s *State) BalePath(p *Page) string {
	if p.IsIndex() {
		return "./"
	}
	return "../"
}

func pageDepth(p *Page) int {
	if p.IsIndex() {
		return 0
	}
	return 1
}

func up(n int) string {
	if n == 0 {
		return "./"
	}
	return strings.Repeat("../", n)
}

func navItems(b *doctree.Bale) []NavItem {
	items := make([]NavItem, len(b.Items))
	for i, it := range b.Items {
		items[i] = NavItem{Title: it.Title(), Slug: it.Slug()}
	}
	return items
}
