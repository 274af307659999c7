package search

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lower cases", "Hello WORLD", []string{"hello", "world"}},
		{"drops short tokens", "a an the cat", []string{"the", "cat"}},
		{"splits on punctuation", "foo-bar,baz.qux", []string{"foo", "bar", "baz", "qux"}},
		{"keeps underscores", "snake_case name", []string{"snake_case", "name"}},
		{"unicode letters", "Über naïve", []string{"über", "naïve"}},
		{"normalizes width", "ＦＵＬＬ", []string{"full"}},
		{"empty", "  ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestTerms_FrequencyScores(t *testing.T) {
	t.Parallel()

	terms := Terms("Docket builds docs. Docket is small; docket is fast.")

	assert.Equal(t, 3, terms["docket"])
	assert.Equal(t, 1, terms["builds"])
	assert.NotContains(t, terms, "is")
	assert.Greater(t, terms["docket"], terms["fast"])
}

func TestTerms_OrderIndependent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Terms("alpha beta gamma beta"), Terms("beta gamma beta alpha"))
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	got := PlainText(`<h1 id="x">Title<a href="#x">#</a></h1><p>Fish &amp; chips<br/>today</p>` +
		`<script>var hidden = 1;</script><style>.x{}</style><pre><code>code_here</code></pre>`)

	assert.Contains(t, got, "Title")
	assert.Contains(t, got, "Fish & chips")
	assert.Contains(t, got, "code_here")
	assert.NotContains(t, got, "hidden")
	assert.NotContains(t, got, ".x{}")
	assert.NotContains(t, got, "<")

	terms := Terms(got)
	assert.Equal(t, 1, terms["chips"])
	assert.Equal(t, 1, terms["today"])
}

func TestIndex_Query(t *testing.T) {
	t.Parallel()

	ix := Index{
		NewEntry("once/", "Once", "<p>install the tool</p>"),
		NewEntry("many/", "Many", "<p>install, install, install again</p>"),
		NewEntry("none/", "None", "<p>unrelated words</p>"),
		NewEntry("tie/", "Tie", "<p>install</p>"),
	}

	t.Run("multi occurrence ranks higher", func(t *testing.T) {
		t.Parallel()

		got := ix.Query("install")
		require.Len(t, got, 3)
		assert.Equal(t, "many/", got[0].Slug)
		assert.Equal(t, 3, got[0].Score)
		// equal scores keep document order
		assert.Equal(t, "once/", got[1].Slug)
		assert.Equal(t, "tie/", got[2].Slug)
	})

	t.Run("scores sum across tokens", func(t *testing.T) {
		t.Parallel()

		got := ix.Query("INSTALL tool")
		require.NotEmpty(t, got)
		assert.Equal(t, "many/", got[0].Slug)
		assert.Equal(t, 2, got[1].Score)
	})

	t.Run("no match is empty not error", func(t *testing.T) {
		t.Parallel()

		got := ix.Query("nothing-matches-this")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("short query tokens ignored", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ix.Query("a"))
	})
}

func TestIndex_WriteIsDeterministic(t *testing.T) {
	t.Parallel()

	ix := Index{
		NewEntry("b/", "B", "<p>zeta alpha mid zeta</p>"),
		NewEntry("a/", "A", "<p>words here</p>"),
	}

	var first, second bytes.Buffer
	require.NoError(t, ix.Write(&first))
	require.NoError(t, ix.Write(&second))
	assert.Equal(t, first.String(), second.String())

	back, err := Read(&first)
	require.NoError(t, err)
	require.Len(t, back, 2)
	assert.Equal(t, "b/", back[0].Slug, "document order preserved")
	assert.Equal(t, 2, back[0].Terms["zeta"])
}

func TestIndex_WriteEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Index(nil).Write(&buf))
	assert.Equal(t, "[]\n", buf.String())
}
