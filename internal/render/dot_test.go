package render

import (
	"context"
	"strings"
	"testing"

	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/world"
)

func loadHall(t *testing.T) world.Result {
	t.Helper()
	return world.FromDef(context.Background(), &gamedata.WorldDef{
		StartRoom: "hall",
		Rooms: []gamedata.RoomDef{
			{ID: "hall", Name: "Hall", Description: "d", Color: "#AA0000", Exits: []gamedata.ExitDef{
				{Direction: "north", Target: "kitchen"},
				{Direction: "south"},
			}},
			{ID: "kitchen", Name: "Kitchen", Description: "d2", Exits: []gamedata.ExitDef{
				{Direction: "south", Target: "hall"},
			}},
		},
	})
}

func TestToDOT(t *testing.T) {
	w := loadHall(t)
	dot := ToDOT(w.Rooms, w.Start)

	for _, want := range []string{
		"digraph world {",
		`r0 [label="Hall", color="#AA0000", peripheries=2];`,
		`r1 [label="Kitchen"];`,
		`r0 -> r1 [label="north"];`,
		`b0 [shape=point, label=""];`,
		`r0 -> b0 [label="south", style=dashed];`,
		`r1 -> r0 [label="south"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTWithoutStart(t *testing.T) {
	w := loadHall(t)
	dot := ToDOT(w.Rooms, nil)
	if strings.Contains(dot, "peripheries") {
		t.Errorf("No room should be marked as start:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil, nil)
	if !strings.HasPrefix(dot, "digraph world {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("Unexpected empty graph:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping graphviz render in short mode")
	}
	w := loadHall(t)
	svg, err := RenderSVG(context.Background(), ToDOT(w.Rooms, w.Start))
	if err != nil {
		t.Fatalf("RenderSVG failed: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("Output is not SVG")
	}
}
