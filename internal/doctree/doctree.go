// Package doctree builds the document tree for a source directory.
//
// Directories become bales, markdown files become pages. The tree is built
// once per build and is read-only afterwards; it is safe to share between
// the goroutines that render it.
package doctree

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/alnah/go-docket/internal/markdown"
	"github.com/alnah/go-docket/internal/naming"
)

// Sentinel errors.
var (
	// ErrIO wraps failures to list or read the source tree.
	ErrIO = errors.New("reading source tree")

	// ErrNotDirectory means the source root is not a directory.
	ErrNotDirectory = errors.New("source is not a directory")

	// ErrDuplicateSlug is matched by every *DuplicateSlugError.
	ErrDuplicateSlug = errors.New("duplicate slug")

	// ErrReservedName is matched by every *ReservedNameError.
	ErrReservedName = errors.New("reserved output name")
)

// DuplicateSlugError reports two siblings whose names produce the same slug.
type DuplicateSlugError struct {
	Slug   string
	First  string
	Second string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("%v %q: %s and %s", ErrDuplicateSlug, e.Slug, e.First, e.Second)
}

// Unwrap makes errors.Is(err, ErrDuplicateSlug) hold.
func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}

// ReservedNameError reports a source entry whose output would replace a
// file the build generates itself.
type ReservedNameError struct {
	Name string
	Path string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrReservedName, e.Name, e.Path)
}

// Unwrap makes errors.Is(err, ErrReservedName) hold.
func (e *ReservedNameError) Unwrap() error {
	return ErrReservedName
}

// Tree is a built document tree plus site-wide settings.
type Tree struct {
	Root *Bale

	// Footer is the root footer page, or nil.
	Footer *Page

	// HighlightMode forces a highlighter mode when non-empty.
	HighlightMode string
}

// Page is a markdown file.
type Page struct {
	Path string // source file, "" for a synthesized index
	Slug string
	Key  naming.SortKey

	fallback string
	md       *markdown.Markdown

	once  sync.Once
	title string
}

// Synthesized reports whether the page has no source file.
func (p *Page) Synthesized() bool {
	return p.Path == ""
}

// Load reads the page's markdown. Synthesized pages are empty.
func (p *Page) Load() ([]byte, error) {
	if p.Synthesized() {
		return nil, nil
	}
	data, err := os.ReadFile(p.Path) // #nosec G304 -- path comes from the source tree listing
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return data, nil
}

// Title returns the text of the page's leading level-1 heading, or the file
// stem when there is none. The file is read once; later calls reuse the
// result.
func (p *Page) Title() string {
	p.once.Do(func() {
		p.title = p.fallback
		if p.Synthesized() || p.md == nil {
			return
		}
		data, err := p.Load()
		if err != nil {
			// Rendering reads the file again and reports the failure.
			return
		}
		if t := p.md.Parse(data).Title(); t != "" {
			p.title = t
		}
	})
	return p.title
}

// Bale is a directory of pages and nested bales.
type Bale struct {
	Path  string
	Slug  string // "" for the root
	Key   naming.SortKey
	Title string

	// Index is rendered as the bale's own page. It is synthesized, empty
	// and titled after the bale when the directory has no index file.
	Index *Page

	// Items are the children in sort order.
	Items []Item

	// Assets are files, and directories without pages, copied verbatim
	// next to the bale's output.
	Assets []string
}

// Item is one child of a bale: exactly one of Page and Bale is set.
type Item struct {
	Page *Page
	Bale *Bale
}

// Slug returns the child's slug.
func (it Item) Slug() string {
	if it.Bale != nil {
		return it.Bale.Slug
	}
	return it.Page.Slug
}

// Title returns the child's navigation title.
func (it Item) Title() string {
	if it.Bale != nil {
		return it.Bale.Title
	}
	return it.Page.Title()
}

// Path returns the child's source path.
func (it Item) Path() string {
	if it.Bale != nil {
		return it.Bale.Path
	}
	return it.Page.Path
}

func (it Item) key() naming.SortKey {
	if it.Bale != nil {
		return it.Bale.Key
	}
	return it.Page.Key
}

// Pages counts the pages in the tree, bale indexes included.
func (b *Bale) Pages() int {
	n := 1
	for _, it := range b.Items {
		if it.Bale != nil {
			n += it.Bale.Pages()
		} else {
			n++
		}
	}
	return n
}
