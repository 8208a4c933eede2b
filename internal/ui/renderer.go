package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/world"
)

const margin = 2

var (
	titleStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	exitStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	blockedStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	statusStyle  = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor("#8FBC8F"))
)

// View is everything the renderer needs to draw one frame.
type View struct {
	Room     *world.Room
	Visited  int // Distinct rooms visited so far
	Total    int // Rooms in the world
	Moves    int
	Message  string
	Explored func(*world.Room) bool // Whether a destination has been visited; may be nil
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the current room, its exits and the status line.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	width, height := r.screen.Size()
	textWidth := width - 2*margin

	y := 1
	r.screen.DrawText(margin, y, v.Room.Name, roomTitleStyle(v.Room))
	y += 2

	for _, line := range Wrap(v.Room.Description, textWidth) {
		r.screen.DrawText(margin, y, line, textStyle)
		y++
	}
	y++

	r.screen.DrawText(margin, y, "Exits:", titleStyle)
	y++
	dirs := v.Room.Directions()
	if len(dirs) == 0 {
		r.screen.DrawText(margin+2, y, "none", blockedStyle)
		y++
	}
	for i, dir := range dirs {
		line, style := exitLine(i, dir, v)
		r.screen.DrawText(margin+2, y, line, style)
		y++
	}

	if v.Message != "" {
		r.screen.DrawText(margin, height-3, v.Message, textStyle)
	}
	status := fmt.Sprintf("Moves: %d   Explored: %d/%d   [q] quit", v.Moves, v.Visited, v.Total)
	r.screen.DrawText(margin, height-1, status, statusStyle)

	r.screen.Show()
}

func exitLine(i int, dir string, v View) (string, tcell.Style) {
	dest := v.Room.Exits[dir]
	prefix := "   "
	if i < 9 {
		prefix = fmt.Sprintf("%d) ", i+1)
	}
	switch {
	case dest == nil:
		return prefix + dir + " (blocked)", blockedStyle
	case v.Explored != nil && v.Explored(dest):
		return prefix + dir + ": " + dest.Name, exitStyle
	default:
		return prefix + dir, exitStyle
	}
}

func roomTitleStyle(room *world.Room) tcell.Style {
	if room.Color == "" {
		return titleStyle
	}
	color, err := gamedata.ParseHexColor(room.Color)
	if err != nil {
		return titleStyle
	}
	return titleStyle.Foreground(color)
}

// Wrap breaks text into lines no wider than width cells, splitting on
// whitespace. Words longer than width get a line of their own.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width < 1 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := words[0]
	lineWidth := runewidth.StringWidth(line)
	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if lineWidth+1+w > width {
			lines = append(lines, line)
			line, lineWidth = word, w
			continue
		}
		line += " " + word
		lineWidth += 1 + w
	}
	return append(lines, line)
}
