// Package web embeds the public pages and their assets into the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var embedded embed.FS

// Static returns the asset tree rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Page reads one of the embedded HTML pages.
func Page(name string) ([]byte, error) {
	return embedded.ReadFile("static/" + name)
}
