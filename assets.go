package formkit

import (
	"io/fs"

	"github.com/goliatone/go-formkit/pkg/renderers/vanilla"
)

// AssetsFS exposes the stylesheet and input runtime script so applications
// can serve them instead of inlining them into every page.
//
// Typical mount:
//
//	mux.Handle("/formkit/",
//	  http.StripPrefix("/formkit/",
//	    http.FileServerFS(formkit.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
