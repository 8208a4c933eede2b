// Package gamedata reads world files and turns them into room definitions.
package gamedata

import (
	"embed"
	"io/fs"
)

// DefaultWorldName is the world file shipped with the binary.
const DefaultWorldName = "manor.json"

// worldsFS embeds the bundled world files at build time.
//
//go:embed worlds/*
var worldsFS embed.FS

// Worlds returns the embedded filesystem containing the bundled world files.
func Worlds() fs.FS {
	sub, err := fs.Sub(worldsFS, "worlds")
	if err != nil {
		panic(err)
	}
	return sub
}
