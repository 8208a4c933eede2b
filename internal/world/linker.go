package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

// Link fills in the exit tables of the rooms in repo from their definitions.
//
// A blocked exit (no destination) is stored as a present entry with a nil
// room. An exit to an ID missing from repo is reported and left out of the
// table. When a direction is declared more than once the last declaration
// wins. Definitions whose room was not built are ignored.
func Link(ctx context.Context, repo *Repository, defs []gamedata.RoomDef) Diagnostics {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.link")
	defer span.End()

	var diags Diagnostics
	linked, blocked := 0, 0
	for _, def := range defs {
		room := repo.GetByID(def.ID)
		if room == nil {
			continue
		}

		for _, exit := range def.Exits {
			if exit.Blocked() {
				room.Exits[exit.Direction] = nil
				blocked++
				continue
			}
			dest := repo.GetByID(exit.Target)
			if dest == nil {
				// A later declaration of a direction replaces an earlier one.
				delete(room.Exits, exit.Direction)
				diags = append(diags, unknownExitDiagnostic(def.ID, exit.Direction, exit.Target))
				continue
			}
			room.Exits[exit.Direction] = dest
			linked++
		}
	}

	span.SetAttributes(
		attribute.Int("world.exits_linked", linked),
		attribute.Int("world.exits_blocked", blocked),
		attribute.Int("world.exits_dangling", len(diags)),
	)
	return diags
}

// ResolveStart returns the room stored under id. It returns nil and a
// diagnostic when id is empty or names no room in repo.
func ResolveStart(repo *Repository, id string) (*Room, Diagnostics) {
	if id == "" {
		return nil, Diagnostics{noStartDiagnostic()}
	}
	room := repo.GetByID(id)
	if room == nil {
		return nil, Diagnostics{unknownStartDiagnostic(id)}
	}
	return room, nil
}
