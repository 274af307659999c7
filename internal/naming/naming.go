// Package naming derives URL slugs and sort keys from source file names.
//
// A name such as "03-Getting Started.md" is split into an ordering prefix
// ("03"), a stem ("Getting Started") and a slug ("getting-started"). The
// prefix only takes part in sorting and never appears in the slug.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/maruel/natural"
)

// DefaultSlug is used when a name has nothing left after prefix and
// extension stripping.
const DefaultSlug = "page"

// documentExtensions lists recognized markdown extensions (lower case, no dot).
var documentExtensions = map[string]bool{
	"md":       true,
	"mdown":    true,
	"markdown": true,
}

// orderPrefix matches digit groups joined by separators, followed by at least
// one separator or the end of the name. "3d-models" has no prefix.
var orderPrefix = regexp.MustCompile(`^(\d+(?:[^\pL\pN]+\d+)*)(?:[^\pL\pN]+|$)`)

// SortKey orders siblings. Names carrying an ordering prefix sort before
// names without one.
type SortKey struct {
	Prefix string // ordering prefix, empty when absent
	Name   string // stem used to break ties
}

// Less reports whether k sorts before other.
func (k SortKey) Less(other SortKey) bool {
	switch {
	case k.Prefix != "" && other.Prefix == "":
		return true
	case k.Prefix == "" && other.Prefix != "":
		return false
	}
	if k.Prefix != other.Prefix {
		if natural.Less(k.Prefix, other.Prefix) {
			return true
		}
		if natural.Less(other.Prefix, k.Prefix) {
			return false
		}
	}
	if natural.Less(k.Name, other.Name) {
		return true
	}
	if natural.Less(other.Name, k.Name) {
		return false
	}
	// "03" and "3" compare equal above; keep the result total.
	return k.Prefix+k.Name < other.Prefix+other.Name
}

// Name is the parsed form of a source file or directory name.
type Name struct {
	Key  SortKey
	Slug string
	Stem string
}

// Parse splits filename into its sort key, slug and stem. It never fails.
func Parse(filename string) Name {
	stem := StripExtension(filepath.Base(filename))

	var prefix string
	if m := orderPrefix.FindStringSubmatchIndex(stem); m != nil {
		prefix = stem[m[2]:m[3]]
		stem = stem[m[1]:]
	}

	return Name{
		Key:  SortKey{Prefix: prefix, Name: stem},
		Slug: Slugify(stem),
		Stem: stem,
	}
}

// Slugify lower-cases s and replaces every character outside [a-z0-9-]
// with '-', collapsing runs. Empty results become DefaultSlug.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastDash := true // suppresses leading dashes
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return DefaultSlug
	}
	return out
}

// IsMarkdown reports whether filename carries a recognized markdown extension.
func IsMarkdown(filename string) bool {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	return documentExtensions[strings.ToLower(ext)]
}

// StripExtension removes a recognized markdown extension from name. Other
// extensions are left in place.
func StripExtension(name string) string {
	if IsMarkdown(name) {
		return strings.TrimSuffix(name, filepath.Ext(name))
	}
	return name
}

// BaseName returns the lower-cased name with any markdown extension removed.
// It is used to spot special files such as "index.md" or "footer.markdown".
func BaseName(filename string) string {
	return strings.ToLower(StripExtension(filepath.Base(filename)))
}
