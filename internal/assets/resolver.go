package assets

import "errors"

// AssetResolver looks assets up in a custom directory first and falls
// back to the built-in copy when that directory lacks them. Any other
// custom-side error (bad name, unreadable file) is returned as is.
type AssetResolver struct {
	custom   *FilesystemLoader // nil without a custom directory
	embedded *EmbeddedLoader
}

// NewAssetResolver creates a resolver. An empty customBasePath serves the
// built-in assets only.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}

	custom, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

// Load resolves the asset name of kind k.
func (r *AssetResolver) Load(k Kind, name string) (string, error) {
	if r.custom != nil {
		content, err := r.custom.Load(k, name)
		if !errors.Is(err, k.errNotFound()) {
			return content, err
		}
	}
	return r.embedded.Load(k, name)
}

func (r *AssetResolver) LoadStyle(name string) (string, error) { return r.Load(Style, name) }

func (r *AssetResolver) LoadTemplate(name string) (string, error) { return r.Load(Template, name) }

var _ AssetLoader = (*AssetResolver)(nil)
