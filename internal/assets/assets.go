package assets

// Names of the built-in assets.
const (
	PostTemplate  = "post"
	IndexTemplate = "index"
	PostStyle     = "post-style"
	IndexStyle    = "style"
)
