package doctree

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-docket/internal/markdown"
	"github.com/alnah/go-docket/internal/naming"
)

// Special file names, compared after lower-casing and stripping a markdown
// extension.
const (
	indexName  = "index"
	readmeName = "readme"
	footerName = "footer"
	titleName  = "title"
)

// Option configures Open.
type Option func(*builder)

// WithLogger sets the logger used for skipped entries.
func WithLogger(log *zap.Logger) Option {
	return func(b *builder) {
		if log != nil {
			b.log = log
		}
	}
}

// WithMarkdown sets the parser used to read page titles.
func WithMarkdown(md *markdown.Markdown) Option {
	return func(b *builder) {
		if md != nil {
			b.md = md
		}
	}
}

// WithHighlightMode records a forced highlighter mode on the tree.
func WithHighlightMode(mode string) Option {
	return func(b *builder) {
		b.highlightMode = mode
	}
}

// WithExclude skips the given absolute paths, typically an output directory
// nested inside the source tree.
func WithExclude(paths ...string) Option {
	return func(b *builder) {
		for _, p := range paths {
			if abs, err := filepath.Abs(p); err == nil {
				b.exclude[abs] = true
			}
		}
	}
}

// WithReservedNames rejects assets with these names in every bale. They are
// the file names the build writes into each page directory.
func WithReservedNames(names ...string) Option {
	return func(b *builder) {
		b.reserved = append(b.reserved, names...)
	}
}

// WithReservedRootNames rejects root assets with these names, the site-wide
// files written at the output root.
func WithReservedRootNames(names ...string) Option {
	return func(b *builder) {
		b.rootReserved = append(b.rootReserved, names...)
	}
}

type builder struct {
	log           *zap.Logger
	md            *markdown.Markdown
	highlightMode string
	exclude       map[string]bool
	reserved      []string
	rootReserved  []string
}

// Open builds the tree rooted at dir.
func Open(dir string, opts ...Option) (*Tree, error) {
	b := &builder{
		log:     zap.NewNop(),
		exclude: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.md == nil {
		b.md = markdown.New()
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}

	root, footer, err := b.bale(abs, true)
	if err != nil {
		return nil, err
	}

	return &Tree{
		Root:          root,
		Footer:        footer,
		HighlightMode: b.highlightMode,
	}, nil
}

// bale builds the bale for dir. It returns nil for a non-root directory
// holding no pages and no nested bales.
func (b *builder) bale(dir string, isRoot bool) (*Bale, *Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	var (
		items         []Item
		assets        []string
		index, readme *Page
		footer        *Page
		title         string
	)

	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)
		if strings.HasPrefix(name, ".") || b.exclude[full] {
			continue
		}

		isDir, err := isDirectory(entry, full)
		if err != nil {
			return nil, nil, err
		}

		if isDir {
			child, _, err := b.bale(full, false)
			if err != nil {
				return nil, nil, err
			}
			if child == nil {
				if hasFiles(full) {
					b.log.Debug("directory has no pages, copying as asset", zap.String("dir", full))
					assets = append(assets, full)
				}
				continue
			}
			items = append(items, Item{Bale: child})
			continue
		}

		if name == titleName {
			if title, err = readTitle(full); err != nil {
				return nil, nil, err
			}
			continue
		}

		if !naming.IsMarkdown(name) {
			assets = append(assets, full)
			continue
		}

		page := b.page(full)
		switch naming.BaseName(name) {
		case indexName:
			if index != nil {
				return nil, nil, &DuplicateSlugError{Slug: indexName, First: index.Path, Second: full}
			}
			index = page
			continue
		case readmeName:
			if readme == nil {
				readme = page
				continue
			}
		case footerName:
			if isRoot && footer == nil {
				footer = page
				continue
			}
		}
		items = append(items, Item{Page: page})
	}

	switch {
	case index == nil && readme != nil:
		index = readme
	case readme != nil:
		items = append(items, Item{Page: readme})
	}

	if !isRoot && len(items) == 0 && index == nil {
		return nil, nil, nil
	}

	reserved := b.reserved
	if isRoot {
		reserved = append(slices.Clip(reserved), b.rootReserved...)
	}
	if err := checkOutputs(items, assets, reserved); err != nil {
		return nil, nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key().Less(items[j].key())
	})

	name := naming.Parse(filepath.Base(dir))
	if title == "" {
		title = baleTitle(dir, isRoot)
	}

	bale := &Bale{
		Path:   dir,
		Key:    name.Key,
		Title:  title,
		Index:  index,
		Items:  items,
		Assets: assets,
	}
	if !isRoot {
		bale.Slug = name.Slug
	}
	if bale.Index == nil {
		bale.Index = &Page{Slug: indexName, fallback: title}
	}

	b.log.Debug("bale built",
		zap.String("dir", dir),
		zap.Int("items", len(items)),
		zap.Int("assets", len(assets)))

	return bale, footer, nil
}

func (b *builder) page(path string) *Page {
	name := naming.Parse(filepath.Base(path))
	fallback := name.Stem
	if fallback == "" {
		fallback = naming.StripExtension(filepath.Base(path))
	}
	return &Page{
		Path:     path,
		Slug:     name.Slug,
		Key:      name.Key,
		fallback: fallback,
		md:       b.md,
	}
}

// baleTitle derives a title from the directory name. A root named "docs"
// takes its parent's name, which is usually the project's.
func baleTitle(dir string, isRoot bool) string {
	base := filepath.Base(dir)
	if isRoot && strings.EqualFold(base, "docs") {
		if parent := filepath.Base(filepath.Dir(dir)); parent != "." && parent != string(filepath.Separator) {
			base = parent
		}
	}
	if stem := naming.Parse(base).Stem; stem != "" {
		return stem
	}
	return base
}

// checkOutputs fails when two entries of a bale would be written to the same
// output name, or an asset would replace a reserved file. Items write to
// their slug, assets to their base name.
func checkOutputs(items []Item, assets, reserved []string) error {
	seen := make(map[string]string, len(items)+len(assets))
	for _, it := range items {
		slug := it.Slug()
		if first, ok := seen[slug]; ok {
			return &DuplicateSlugError{Slug: slug, First: first, Second: it.Path()}
		}
		seen[slug] = it.Path()
	}
	for _, path := range assets {
		name := filepath.Base(path)
		if slices.Contains(reserved, name) {
			return &ReservedNameError{Name: name, Path: path}
		}
		if first, ok := seen[name]; ok {
			return &DuplicateSlugError{Slug: name, First: first, Second: path}
		}
		seen[name] = path
	}
	return nil
}

// readTitle returns the first non-blank line of a title file.
func readTitle(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the source tree listing
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}
	return "", nil
}

// isDirectory resolves symlinks so linked directories are walked too.
func isDirectory(entry fs.DirEntry, full string) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil // dangling link, treated as a file
		}
		return false, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return info.IsDir(), nil
}

// hasFiles reports whether dir contains any regular, non-hidden file.
func hasFiles(dir string) bool {
	found := false
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			found = true
			return fs.SkipAll
		}
		return nil
	})
	return found
}
