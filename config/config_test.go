package config

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rhartert/pathfind/sssp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathfind.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
format = "json"

[graph]
file = "small.txt"
source = 2
frontier = "indexed"

[ladder]
dictionary = "/usr/share/dict/words"

[metrics]
file = "metrics.prom"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, Config{
		Log:     Log{Level: "debug", Format: "json"},
		Graph:   Graph{File: "small.txt", Source: 2, Frontier: "indexed"},
		Ladder:  Ladder{Dictionary: "/usr/share/dict/words"},
		Metrics: Metrics{File: "metrics.prom"},
	}, cfg)
}

func TestLoad_partialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[graph]\nfile = \"g.txt\"\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	want := Default()
	want.Graph.File = "g.txt"
	assert.Equal(t, want, cfg)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadOptional_missingFile(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOptional_existingFile(t *testing.T) {
	path := writeConfig(t, "[ladder]\ndictionary = \"dict.txt\"\n")

	cfg, err := LoadOptional(path)

	require.NoError(t, err)
	assert.Equal(t, "dict.txt", cfg.Ladder.Dictionary)
}

func TestLoadOptional_invalidFile(t *testing.T) {
	_, err := LoadOptional(writeConfig(t, "[log]\nlevel = \"loud\"\n"))

	assert.Error(t, err)
}

func TestLoad_emptyPath(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "[graph\nfile = 1"},
		{"wrong type", "[graph]\nsource = \"zero\"\n"},
		{"unknown level", "[log]\nlevel = \"loud\"\n"},
		{"unknown format", "[log]\nformat = \"xml\"\n"},
		{"negative source", "[graph]\nsource = -1\n"},
		{"unknown frontier", "[graph]\nfrontier = \"fibonacci\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))

			assert.Error(t, err)
		})
	}
}

func TestLog_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := Log{Level: tt.level}.SlogLevel()

		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "level %q", tt.level)
	}
}

func TestGraph_FrontierKind(t *testing.T) {
	got, err := Graph{Frontier: "indexed"}.FrontierKind()
	require.NoError(t, err)
	assert.Equal(t, sssp.IndexedFrontier, got)

	got, err = Graph{}.FrontierKind()
	require.NoError(t, err)
	assert.Equal(t, sssp.LazyFrontier, got)

	_, err = Graph{Frontier: "other"}.FrontierKind()
	assert.Error(t, err)
}
