package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/world"
)

func newSimScreen(t *testing.T, width, height int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(width, height)
	t.Cleanup(sim.Fini)
	return newScreen(sim), sim
}

// screenText returns the visible text of every row.
func screenText(sim tcell.SimulationScreen) []string {
	cells, width, height := sim.GetContents()
	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		for x := 0; x < width; x++ {
			runes := cells[y*width+x].Runes
			if len(runes) == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteRune(runes[0])
		}
		rows[y] = strings.TrimRight(b.String(), " ")
	}
	return rows
}

func TestRenderRoom(t *testing.T) {
	def := &gamedata.WorldDef{
		StartRoom: "hall",
		Rooms: []gamedata.RoomDef{
			{ID: "hall", Name: "Hall", Description: "A long hall with a very high ceiling.", Color: "#FF0000", Exits: []gamedata.ExitDef{
				{Direction: "north", Target: "kitchen"},
				{Direction: "south"},
				{Direction: "east", Target: "study"},
			}},
			{ID: "kitchen", Name: "Kitchen", Description: "Pots."},
			{ID: "study", Name: "Study", Description: "Books."},
		},
	}
	w := world.FromDef(context.Background(), def)
	hall, kitchen := w.Rooms[0], w.Rooms[1]

	screen, sim := newSimScreen(t, 30, 20)
	NewRenderer(screen).Render(View{
		Room:     hall,
		Visited:  2,
		Total:    3,
		Moves:    4,
		Message:  "You go south.",
		Explored: func(r *world.Room) bool { return r == kitchen },
	})

	text := strings.Join(screenText(sim), "\n")
	for _, want := range []string{
		"  Hall",
		"  A long hall with a very",
		"  high ceiling.",
		"  Exits:",
		"    1) north: Kitchen",
		"    2) south (blocked)",
		"    3) east",
		"  You go south.",
		"  Moves: 4   Explored: 2/3",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Rendered screen missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Study") {
		t.Error("Unvisited destinations should not be named")
	}
}

func TestRenderRoomWithoutExits(t *testing.T) {
	screen, sim := newSimScreen(t, 40, 12)
	room := &world.Room{Name: "Closet", Description: "Cramped.", Exits: map[string]*world.Room{}}

	NewRenderer(screen).Render(View{Room: room, Visited: 1, Total: 1})

	text := strings.Join(screenText(sim), "\n")
	if !strings.Contains(text, "    none") {
		t.Errorf("Expected an empty exit list:\n%s", text)
	}
}

func TestDrawTextClips(t *testing.T) {
	screen, sim := newSimScreen(t, 5, 1)
	end := screen.DrawText(2, 0, "abcdef", tcell.StyleDefault)
	screen.Show()
	if end != 5 {
		t.Errorf("DrawText returned %d, want 5", end)
	}
	if got := screenText(sim)[0]; got != "  abc" {
		t.Errorf("Row = %q, want %q", got, "  abc")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"one two three", 100, []string{"one two three"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"  spaced   out  ", 20, []string{"spaced out"}},
		{"supercalifragilistic word", 5, []string{"supercalifragilistic", "word"}},
		{"no width", 0, []string{"no width"}},
	}

	for _, tt := range tests {
		got := Wrap(tt.text, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
