package staticfiles

import (
	"embed"
	"io/fs"
)

//go:embed css/*
var embedded embed.FS

// EmbeddedFS serves the stylesheet compiled into the binary.
func EmbeddedFS() fs.FS {
	return embedded
}
