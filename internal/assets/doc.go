// Package assets provides the page templates and stylesheets of the blog.
//
// Assets come in two kinds, each in its own directory:
//
//	{root}/
//	├── styles/
//	│   ├── style.css        # index page
//	│   └── post-style.css   # post pages
//	└── templates/
//	    ├── index.html       # index skeleton (text/template)
//	    └── post.html        # post skeleton (text/template)
//
// EmbeddedLoader serves the copy compiled into the binary. FilesystemLoader
// serves a directory on disk with the same layout. AssetResolver asks the
// directory first and falls back to the embedded copy per file, so a theme
// may override the post template alone.
//
// Names are bare stems checked by ValidateAssetName; on disk, reads are
// confined to the base directory through os.OpenInRoot.
package assets
