package assets

// Default asset names.
const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "page"
	SearchScriptName    = "search"
	DarkScriptName      = "dark"
)

// Kind is a category of asset, stored in its own directory.
type Kind struct {
	Dir      string // directory under the base path
	Ext      string // file extension, with the dot
	NotFound error  // returned when the asset does not exist
}

// Asset kinds.
var (
	Style    = Kind{Dir: "styles", Ext: ".css", NotFound: ErrStyleNotFound}
	Template = Kind{Dir: "templates", Ext: ".html", NotFound: ErrTemplateNotFound}
	Script   = Kind{Dir: "scripts", Ext: ".js", NotFound: ErrScriptNotFound}
)

// path returns the slash-separated path of an asset relative to a base.
func (k Kind) path(name string) string {
	return k.Dir + "/" + name + k.Ext
}

// File is an asset written to the output root.
type File struct {
	Name string // output file name, e.g. "style.css"
	Data []byte
}

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the embedded loader.
// The name should not include the .css extension or path components.
func LoadStyle(name string) (string, error) {
	return defaultLoader.Load(Style, name)
}

// LoadTemplate loads an HTML template by name using the embedded loader.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.Load(Template, name)
}

// LoadScript loads a JavaScript file by name using the embedded loader.
func LoadScript(name string) (string, error) {
	return defaultLoader.Load(Script, name)
}
