package world

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic.
type Severity int

const (
	// SeverityWarning marks a problem that only drops a single exit or is
	// otherwise harmless to the rest of the world.
	SeverityWarning Severity = iota
	// SeverityError marks a dropped room or an unresolved start room.
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Kind identifies what went wrong.
type Kind string

const (
	KindMissingField  Kind = "missing_field"
	KindDuplicateRoom Kind = "duplicate_room"
	KindUnknownExit   Kind = "unknown_exit"
	KindNoStart       Kind = "no_start_room"
	KindUnknownStart  Kind = "unknown_start_room"
)

// Diagnostic describes a recoverable problem found while loading a world.
type Diagnostic struct {
	Severity  Severity
	Kind      Kind
	Room      string // Room ID the problem belongs to, if any
	Direction string // Exit direction, for exit problems
	Target    string // Unresolved room ID, for exit and start problems
	Message   string
}

// String formats the diagnostic as "severity: message".
func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message
}

// Diagnostics is an ordered list of load diagnostics.
type Diagnostics []Diagnostic

// HasErrors reports whether any diagnostic has error severity.
func (ds Diagnostics) HasErrors() bool {
	return ds.Count(SeverityError) > 0
}

// Count returns the number of diagnostics with the given severity.
func (ds Diagnostics) Count(sev Severity) int {
	n := 0
	for _, d := range ds {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// OfKind returns the diagnostics of the given kind.
func (ds Diagnostics) OfKind(kind Kind) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// String joins all diagnostics, one per line.
func (ds Diagnostics) String() string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

func missingFieldDiagnostic(id string, fields []string) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Kind:     KindMissingField,
		Room:     id,
		Message:  fmt.Sprintf("room %q is missing %s; room skipped", id, strings.Join(fields, " and ")),
	}
}

func duplicateRoomDiagnostic(id string) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Kind:     KindDuplicateRoom,
		Room:     id,
		Message:  fmt.Sprintf("room %q is defined more than once; the last definition wins", id),
	}
}

func unknownExitDiagnostic(id, direction, target string) Diagnostic {
	return Diagnostic{
		Severity:  SeverityWarning,
		Kind:      KindUnknownExit,
		Room:      id,
		Direction: direction,
		Target:    target,
		Message:   fmt.Sprintf("exit %q of room %q leads to unknown room %q; exit ignored", direction, id, target),
	}
}

func noStartDiagnostic() Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Kind:     KindNoStart,
		Message:  "start_room is not defined",
	}
}

func unknownStartDiagnostic(id string) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Kind:     KindUnknownStart,
		Target:   id,
		Message:  fmt.Sprintf("start room %q was not found", id),
	}
}
