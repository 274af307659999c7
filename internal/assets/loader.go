package assets

// Loader reads assets by kind and name. Names carry no extension.
// Implementations return kind.NotFound for missing assets and
// ErrInvalidAssetName for unsafe names.
type Loader interface {
	Load(kind Kind, name string) (string, error)
}
