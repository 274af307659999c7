// Package assets provides the stylesheet, page template and scripts the
// site layout is built from. Assets can be loaded from embedded files or a
// custom directory.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from the go:embed filesystem
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── Resolver          - custom first, embedded as fallback
//
// Resolver is what the layout uses. Overriding one asset, such as the
// stylesheet, keeps the embedded versions of the others.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css     # site stylesheet, written as style.css
//	├── templates/
//	│   └── {name}.html    # html/template page layout
//	└── scripts/
//	    └── {name}.js      # search.js, dark.js
//
// # Security
//
// Asset names are validated to prevent path traversal.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
