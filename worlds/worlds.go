// Package worlds embeds the bundled world files.
package worlds

import (
	"embed"
	"io/fs"
)

//go:embed classic/*.lua
var files embed.FS

// Classic returns the bundled nine-location adventure.
func Classic() fs.FS {
	sub, err := fs.Sub(files, "classic")
	if err != nil {
		panic(err)
	}
	return sub
}
