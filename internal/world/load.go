package world

import (
	"context"
	"io/fs"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/telemetry"
)

// Result is a loaded world.
type Result struct {
	Rooms       []*Room // Every room that was built, in document order
	Start       *Room   // Nil when the start room could not be resolved
	Diagnostics Diagnostics
}

// FromDef builds and links the rooms of def and resolves its start room.
// It never fails; problems are reported in the result's diagnostics.
func FromDef(ctx context.Context, def *gamedata.WorldDef) Result {
	if def == nil {
		return Result{Rooms: []*Room{}}
	}

	repo, records, diags := Build(ctx, def.Rooms)
	diags = append(diags, Link(ctx, repo, records)...)

	start, startDiags := ResolveStart(repo, def.StartRoom)
	diags = append(diags, startDiags...)

	return Result{
		Rooms:       repo.All(),
		Start:       start,
		Diagnostics: diags,
	}
}

// LoadFile reads the world file name from fsys and builds it.
//
// If the file cannot be read or decoded, or has no rooms collection, LoadFile
// returns an empty result and the error. Otherwise the error is nil and the
// result may still carry diagnostics.
func LoadFile(ctx context.Context, fsys fs.FS, name string) (Result, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "world.load")
	defer span.End()

	span.SetAttributes(attribute.String("world.file", name))

	def, err := gamedata.LoadWorld(fsys, name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "world load failed")
		return Result{Rooms: []*Room{}}, err
	}

	result := FromDef(ctx, def)
	span.SetAttributes(
		attribute.Int("world.rooms", len(result.Rooms)),
		attribute.Bool("world.has_start", result.Start != nil),
		attribute.Int("world.errors", result.Diagnostics.Count(SeverityError)),
		attribute.Int("world.warnings", result.Diagnostics.Count(SeverityWarning)),
	)
	return result, nil
}

// LoadDefault builds the world bundled with the binary.
func LoadDefault(ctx context.Context) (Result, error) {
	return LoadFile(ctx, gamedata.Worlds(), gamedata.DefaultWorldName)
}
