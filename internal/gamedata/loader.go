package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Fatal load errors. Each is wrapped with the file name and the underlying
// cause, so callers should test for them with errors.Is.
var (
	ErrReadWorld         = errors.New("world file unreadable")
	ErrParseWorld        = errors.New("world file invalid")
	ErrNoRooms           = errors.New(`world file has no "rooms" collection`)
	ErrUnsupportedFormat = errors.New("unsupported world file format")
)

// decodeFunc turns raw file content into a world definition.
type decodeFunc func(content []byte) (*WorldDef, error)

// decoders maps a lower-case file extension to its decoder.
var decoders = map[string]decodeFunc{
	".json": decodeJSON,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".toml": decodeTOML,
}

// LoadWorld reads and decodes the world file name from fsys. The format is
// chosen by file extension.
func LoadWorld(fsys fs.FS, name string) (*WorldDef, error) {
	ext := strings.ToLower(path.Ext(name))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadWorld, name, err)
	}

	def, err := decode(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return def, nil
}

// DefaultWorld loads the world bundled with the binary.
func DefaultWorld() (*WorldDef, error) {
	return LoadWorld(Worlds(), DefaultWorldName)
}

// parseError wraps a decoder failure in ErrParseWorld.
func parseError(err error) error {
	return fmt.Errorf("%w: %w", ErrParseWorld, err)
}
