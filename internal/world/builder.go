package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

// Build creates a room for every well-formed definition and indexes it by ID.
// Exits are left empty; Link fills them in once every room exists.
//
// A definition needs a non-empty name and description. Definitions missing
// either are skipped and reported. When an ID is defined more than once the
// last definition wins and takes the position of the first.
//
// Build returns the repository, the deduplicated definitions in document
// order (to be passed on to Link), and any diagnostics.
func Build(ctx context.Context, defs []gamedata.RoomDef) (*Repository, []gamedata.RoomDef, Diagnostics) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.build")
	defer span.End()

	records, diags := dedupe(defs)

	repo := NewRepository()
	skipped := 0
	for _, def := range records {
		if missing := missingFields(def); len(missing) > 0 {
			diags = append(diags, missingFieldDiagnostic(def.ID, missing))
			skipped++
			continue
		}
		room := newRoom(def.Name, def.Description)
		room.Color = def.Color
		repo.Put(def.ID, room)
	}

	span.SetAttributes(
		attribute.Int("world.definitions", len(defs)),
		attribute.Int("world.rooms", repo.Count()),
		attribute.Int("world.rooms_skipped", skipped),
		attribute.Int("world.duplicates", len(defs)-len(records)),
	)
	return repo, records, diags
}

// dedupe collapses repeated IDs, keeping the last definition at the first
// definition's position.
func dedupe(defs []gamedata.RoomDef) ([]gamedata.RoomDef, Diagnostics) {
	var diags Diagnostics
	records := make([]gamedata.RoomDef, 0, len(defs))
	index := make(map[string]int, len(defs))
	for _, def := range defs {
		if i, ok := index[def.ID]; ok {
			records[i] = def
			diags = append(diags, duplicateRoomDiagnostic(def.ID))
			continue
		}
		index[def.ID] = len(records)
		records = append(records, def)
	}
	return records, diags
}

func missingFields(def gamedata.RoomDef) []string {
	var missing []string
	if def.Name == "" {
		missing = append(missing, `"name"`)
	}
	if def.Description == "" {
		missing = append(missing, `"description"`)
	}
	return missing
}
