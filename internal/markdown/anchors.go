package markdown

import (
	"strconv"

	"github.com/gosimple/slug"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// defaultAnchor names headings whose text slugifies to nothing.
const defaultAnchor = "section"

// anchorIDs generates unique heading IDs for one document. Repeated titles
// get a numeric suffix: "usage", "usage-1", "usage-2".
type anchorIDs struct {
	used map[string]bool
}

func newAnchorIDs() *anchorIDs {
	return &anchorIDs{used: make(map[string]bool)}
}

// Generate implements parser.IDs.
func (a *anchorIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	base := slug.Make(string(value))
	if base == "" {
		base = defaultAnchor
	}

	id := base
	for n := 1; a.used[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	a.used[id] = true
	return []byte(id)
}

// Put implements parser.IDs and reserves explicitly assigned IDs.
func (a *anchorIDs) Put(value []byte) {
	a.used[string(value)] = true
}

var _ parser.IDs = (*anchorIDs)(nil)
