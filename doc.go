// Package docket renders a directory tree of markdown files into a static
// HTML site.
//
// # Quick Start
//
//	b, err := docket.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := b.Build(ctx, "docs", "build")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Pages, "pages")
//
// # Source Layout
//
// Every directory is a bale, every markdown file (.md, .mdown, .markdown)
// a page. Within a directory:
//
//   - index.md is the bale's own page; readme.md stands in when there is
//     no index. Without either an empty page titled after the bale is used.
//   - footer.md at the root is rendered into every page footer.
//   - a file named title overrides the bale's title.
//   - any other file is copied next to the bale's output.
//
// A numeric prefix such as "03-" orders siblings and is dropped from the
// URL slug.
//
// # Output Layout
//
//	build/
//	├── index.html              root bale index
//	├── intro/index.html        page "01-intro.md"
//	├── guide/index.html        bale "02-guide"
//	├── guide/install/index.html
//	├── search_index.json
//	├── style.css, search.js, dark.js
//	└── highlight.css           when highlighting at build time
//
// # Builds
//
// Pages of each bale are rendered concurrently with a bounded number of
// workers. Output is written to a staging directory next to the target and
// swapped in only when every page succeeded, so a failed build leaves the
// previous site untouched. Equal input produces byte-identical output.
package docket
