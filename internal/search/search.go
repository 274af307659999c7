// Package search builds the term-frequency index the site's search box
// loads in the browser.
package search

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// IndexFile is the index's path relative to the output root.
const IndexFile = "search_index.json"

// MinTermLength is the shortest token, in runes, that is indexed.
const MinTermLength = 3

// Entry is the index record for one page.
type Entry struct {
	Slug  string         `json:"slug"`
	Title string         `json:"title"`
	Terms map[string]int `json:"terms"`
}

// NewEntry builds the entry for a page from its rendered HTML content.
func NewEntry(slug, title, content string) Entry {
	return Entry{
		Slug:  slug,
		Title: title,
		Terms: Terms(PlainText(content)),
	}
}

// Terms tokenizes text and counts occurrences of each token. Tokens are
// NFKC-normalized and lower-cased; tokens shorter than MinTermLength are
// dropped.
func Terms(text string) map[string]int {
	terms := make(map[string]int)
	for _, tok := range Tokenize(text) {
		terms[tok]++
	}
	return terms
}

// Tokenize splits text on non-word characters. It is used for both page
// text and queries so the two always agree.
func Tokenize(text string) []string {
	lower := cases.Lower(language.Und).String(norm.NFKC.String(text))
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !isWordRune(r)
	})

	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= MinTermLength {
			out = append(out, f)
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// PlainText returns the text content of an HTML fragment. Script and style
// bodies are skipped; block boundaries become spaces.
func PlainText(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			if isRawTextTag(name) {
				skip++
			}
			b.WriteByte(' ')
		case html.EndTagToken:
			name, _ := z.TagName()
			if isRawTextTag(name) && skip > 0 {
				skip--
			}
			b.WriteByte(' ')
		case html.SelfClosingTagToken:
			b.WriteByte(' ')
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isRawTextTag(name []byte) bool {
	switch string(name) {
	case "script", "style":
		return true
	}
	return false
}

// Index is the ordered collection of page entries for a site.
type Index []Entry

// Write serializes the index as JSON. Map keys are sorted, so equal
// indexes produce identical bytes.
func (ix Index) Write(w io.Writer) error {
	entries := ix
	if entries == nil {
		entries = Index{}
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding search index: %w", err)
	}
	return nil
}

// Read decodes an index written by Write.
func Read(r io.Reader) (Index, error) {
	var ix Index
	if err := json.NewDecoder(r).Decode(&ix); err != nil {
		return nil, fmt.Errorf("decoding search index: %w", err)
	}
	return ix, nil
}

// Result is one query match.
type Result struct {
	Slug  string
	Title string
	Score int
}

// Query scores every entry by summing the counts of the query's tokens and
// returns the matches by descending score. Equal scores keep index order.
// A query matching nothing returns an empty slice.
func (ix Index) Query(q string) []Result {
	tokens := Tokenize(q)
	results := []Result{}
	if len(tokens) == 0 {
		return results
	}

	for _, e := range ix {
		score := 0
		for _, tok := range tokens {
			score += e.Terms[tok]
		}
		if score > 0 {
			results = append(results, Result{Slug: e.Slug, Title: e.Title, Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
