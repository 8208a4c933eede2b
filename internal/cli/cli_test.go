package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/roomcrawl/internal/game"
	"github.com/samdwyer/roomcrawl/internal/gamedata"
	"github.com/samdwyer/roomcrawl/internal/world"
)

const partialWorld = `
start_room: attic
rooms:
  hall:
    name: Hall
    description: A long hall.
    exits:
      north: kitchen
      east: nowhere
      south: ~
  kitchen:
    name: Kitchen
    description: Pots and pans.
  attic:
    description: Dusty.
`

func writeWorld(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// runCmd executes the root command with args, capturing stdout and log output.
func runCmd(t *testing.T, args ...string) (stdout, logs string, err error) {
	t.Helper()
	var out, logBuf bytes.Buffer

	root := newRootCmd()
	root.PersistentPreRun = nil
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	ctx := withLogger(context.Background(), newLogger(&logBuf, log.DebugLevel))
	err = root.ExecuteContext(ctx)
	return out.String(), logBuf.String(), err
}

func TestCheckReportsDiagnostics(t *testing.T) {
	path := writeWorld(t, "partial.yaml", partialWorld)

	stdout, logs, err := runCmd(t, "check", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	if !strings.Contains(stdout, "2 rooms, 1 exits, 1 blocked, start none, 2 errors, 1 warnings") {
		t.Errorf("Unexpected summary: %q", stdout)
	}
	for _, want := range []string{
		`room "attic" is missing "name"`,
		`leads to unknown room "nowhere"`,
		`start room "attic" was not found`,
		"direction=east",
	} {
		if !strings.Contains(logs, want) {
			t.Errorf("Logs missing %q:\n%s", want, logs)
		}
	}
}

func TestCheckStrict(t *testing.T) {
	path := writeWorld(t, "partial.yaml", partialWorld)

	_, _, err := runCmd(t, "check", "--strict", path)
	if !errors.Is(err, errWorldHasErrors) {
		t.Errorf("Expected errWorldHasErrors, got %v", err)
	}
}

func TestCheckFatal(t *testing.T) {
	path := writeWorld(t, "broken.json", `{"rooms": `)

	_, logs, err := runCmd(t, "check", path)
	if !errors.Is(err, gamedata.ErrParseWorld) {
		t.Errorf("Expected ErrParseWorld, got %v", err)
	}
	if !strings.Contains(logs, "Failed to load world") {
		t.Errorf("Fatal error should be logged once:\n%s", logs)
	}
}

func TestCheckBundledWorld(t *testing.T) {
	t.Setenv(game.EnvWorld, "")

	stdout, _, err := runCmd(t, "check", "--strict")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "bundled:"+gamedata.DefaultWorldName) {
		t.Errorf("Expected bundled world summary, got %q", stdout)
	}
	if !strings.Contains(stdout, "0 errors, 0 warnings") {
		t.Errorf("Bundled world should be clean: %q", stdout)
	}
}

func TestCheckUsesEnvWorld(t *testing.T) {
	path := writeWorld(t, "env.toml", `
start_room = "only"
[rooms.only]
name = "Only Room"
description = "Nothing else."
`)
	t.Setenv(game.EnvWorld, path)

	stdout, _, err := runCmd(t, "check")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(stdout, `1 rooms, 0 exits, 0 blocked, start "Only Room"`) {
		t.Errorf("Unexpected summary: %q", stdout)
	}
}

func TestMapDOT(t *testing.T) {
	path := writeWorld(t, "partial.yaml", partialWorld)

	stdout, _, err := runCmd(t, "map", path)
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if !strings.Contains(stdout, `r0 -> r1 [label="north"];`) {
		t.Errorf("Unexpected DOT output:\n%s", stdout)
	}
}

func TestMapPNGNeedsOutput(t *testing.T) {
	_, _, err := runCmd(t, "map", "-f", "png")
	if err == nil || !strings.Contains(err.Error(), "--output") {
		t.Errorf("Expected --output error, got %v", err)
	}
}

func TestMapFormat(t *testing.T) {
	tests := []struct {
		format, output string
		want           string
		wantErr        bool
	}{
		{"", "", "dot", false},
		{"", "out.svg", "svg", false},
		{"", "out.PNG", "png", false},
		{"", "out.gv", "dot", false},
		{"SVG", "out.png", "svg", false},
		{"pdf", "", "", true},
		{"", "out.txt", "", true},
	}

	for _, tt := range tests {
		got, err := mapFormat(tt.format, tt.output)
		if (err != nil) != tt.wantErr {
			t.Errorf("mapFormat(%q, %q) error = %v, wantErr %v", tt.format, tt.output, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("mapFormat(%q, %q) = %q, want %q", tt.format, tt.output, got, tt.want)
		}
	}
}

func TestLogDiagnosticsLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.WarnLevel)

	logDiagnostics(logger, world.Diagnostics{
		{Severity: world.SeverityWarning, Room: "hall", Direction: "north", Target: "x", Message: "dangling"},
		{Severity: world.SeverityError, Message: "no start"},
	})

	out := buf.String()
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "dangling") {
		t.Errorf("Expected warning line:\n%s", out)
	}
	if !strings.Contains(out, "ERRO") || !strings.Contains(out, "no start") {
		t.Errorf("Expected error line:\n%s", out)
	}
	if !strings.Contains(out, "room=hall") || !strings.Contains(out, "target=x") {
		t.Errorf("Expected key-value fields:\n%s", out)
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("Expected default logger without an attached one")
	}
}

func TestSetVersion(t *testing.T) {
	t.Cleanup(func() { SetVersion("", "", "") })

	SetVersion("1.0.0", "abc123", "2026-01-01")
	if Version() != "1.0.0" {
		t.Errorf("Version() = %q, want %q", Version(), "1.0.0")
	}

	SetVersion("", "", "")
	if Version() != "dev" {
		t.Errorf("Version() = %q, want %q", Version(), "dev")
	}
}
