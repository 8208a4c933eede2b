package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/telemetry"
	"github.com/samdwyer/roomcrawl/internal/ui"
	"github.com/samdwyer/roomcrawl/internal/world"
)

// Game holds the entire game state.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	explorer  *Explorer
	roomCount int
	message   string
	sessionID string
	running   bool
}

// New creates a game over a loaded world. It fails before touching the
// terminal if the world has no start room.
func New(w world.Result) (*Game, error) {
	explorer, err := NewExplorer(w.Start)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:    screen,
		renderer:  ui.NewRenderer(screen),
		explorer:  explorer,
		roomCount: len(w.Rooms),
		message:   "Arrow keys or n/s/e/w/u/d to move, 1-9 to take a listed exit, q to quit.",
		sessionID: uuid.NewString(),
		running:   true,
	}, nil
}

// Run executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("game.session_id", g.sessionID),
		attribute.Int("world.rooms", g.roomCount),
		attribute.String("game.start_room", g.explorer.Current().Name),
	)
	initSpan.End()

	defer g.screen.Close()

	for g.running {
		g.renderer.Render(g.view())
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) view() ui.View {
	return ui.View{
		Room:     g.explorer.Current(),
		Visited:  g.explorer.VisitedCount(),
		Total:    g.roomCount,
		Moves:    g.explorer.Moves(),
		Message:  g.message,
		Explored: g.explorer.HasVisited,
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if isQuitKey(ev) {
		g.running = false
		return
	}
	if direction, ok := directionForKey(ev, g.explorer.Current()); ok {
		g.tryMove(ctx, direction)
	}
}

// tryMove attempts to move through the exit in direction.
func (g *Game) tryMove(ctx context.Context, direction string) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.move")
	defer span.End()

	from := g.explorer.Current()
	result := g.explorer.Move(direction)
	g.message = moveMessage(direction, result)

	span.SetAttributes(
		attribute.String("game.session_id", g.sessionID),
		attribute.String("move.direction", direction),
		attribute.String("move.from", from.Name),
		attribute.String("move.result", result.String()),
		attribute.Int("game.moves", g.explorer.Moves()),
	)
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

var (
	arrowDirections = map[tcell.Key]string{
		tcell.KeyUp:    "north",
		tcell.KeyDown:  "south",
		tcell.KeyRight: "east",
		tcell.KeyLeft:  "west",
	}
	runeDirections = map[rune]string{
		'n': "north",
		's': "south",
		'e': "east",
		'w': "west",
		'u': "up",
		'd': "down",
	}
)

// directionForKey maps a key press to an exit direction. Digits pick the nth
// exit in the order the room lists them.
func directionForKey(ev *tcell.EventKey, room *world.Room) (string, bool) {
	if dir, ok := arrowDirections[ev.Key()]; ok {
		return dir, true
	}
	if ev.Key() != tcell.KeyRune {
		return "", false
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		dirs := room.Directions()
		i := int(r - '1')
		if i < len(dirs) {
			return dirs[i], true
		}
		return "", false
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	dir, ok := runeDirections[r]
	return dir, ok
}

func moveMessage(direction string, result MoveResult) string {
	switch result {
	case MoveOK:
		return fmt.Sprintf("You go %s.", direction)
	case MoveBlocked:
		return fmt.Sprintf("The way %s is blocked.", direction)
	default:
		return fmt.Sprintf("You can't go %s from here.", direction)
	}
}
