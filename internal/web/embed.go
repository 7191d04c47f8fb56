package web

import (
	"embed"
	"io/fs"
	"net/http"
)

var (
	//go:embed static
	embeddedStaticFiles embed.FS

	//go:embed templates
	embeddedTemplates embed.FS
)

// embeddedDir serves the named top level directory of an embedded tree.
func embeddedDir(tree embed.FS, dir string) http.FileSystem {
	sub, err := fs.Sub(tree, dir)
	if err != nil {
		panic("embedded directory " + dir + " is missing: " + err.Error())
	}

	return http.FS(sub)
}
