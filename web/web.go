// Package web embeds the static portfolio site.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// Handler serves the embedded site rooted at static/.
func Handler() http.Handler {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// static/ is embedded at build time; a failure here is a build defect.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
