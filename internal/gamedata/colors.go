package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(rgb>>16&0xFF), int32(rgb>>8&0xFF), int32(rgb&0xFF)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
