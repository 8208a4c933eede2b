// Package render exports a loaded world as a Graphviz room map.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/samdwyer/roomcrawl/internal/world"
)

// ToDOT converts rooms to a Graphviz digraph. Rooms are named r0, r1, ... by
// position and labelled with their display name. Each linked exit becomes an
// edge labelled with its direction; a blocked exit becomes a dashed edge to
// an anonymous point. The start room, if any, is drawn with a double border.
func ToDOT(rooms []*world.Room, start *world.Room) string {
	ids := make(map[*world.Room]string, len(rooms))
	for i, r := range rooms {
		ids[r] = fmt.Sprintf("r%d", i)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph world {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, r := range rooms {
		attrs := fmt.Sprintf("label=%q", r.Name)
		if r.Color != "" {
			attrs += fmt.Sprintf(", color=%q", r.Color)
		}
		if r == start {
			attrs += ", peripheries=2"
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", ids[r], attrs)
	}

	buf.WriteString("\n")
	blocked := 0
	for _, r := range rooms {
		for _, dir := range r.Directions() {
			dest := r.Exits[dir]
			if dest == nil {
				stub := fmt.Sprintf("b%d", blocked)
				blocked++
				fmt.Fprintf(&buf, "  %s [shape=point, label=\"\"];\n", stub)
				fmt.Fprintf(&buf, "  %s -> %s [label=%q, style=dashed];\n", ids[r], stub, dir)
				continue
			}
			destID, ok := ids[dest]
			if !ok {
				continue
			}
			fmt.Fprintf(&buf, "  %s -> %s [label=%q];\n", ids[r], destID, dir)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
