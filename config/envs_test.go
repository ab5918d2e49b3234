package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEnv(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("Reads process environment", func(t *testing.T) {
		t.Setenv("MAZE_WIDTH", "800")
		t.Setenv("MAZE_HEIGHT", "600")
		t.Setenv("MAZE_CELL_SIZE", "40")

		cfg, err := LoadEnv(missing)
		require.NoError(t, err)
		assert.Equal(t, Maze{Width: 800, Height: 600, CellSize: 40}, cfg)
	})

	t.Run("Defaults cell size", func(t *testing.T) {
		unsetEnv(t, "MAZE_CELL_SIZE")
		t.Setenv("MAZE_WIDTH", "100")
		t.Setenv("MAZE_HEIGHT", "100")

		cfg, err := LoadEnv(missing)
		require.NoError(t, err)
		assert.Equal(t, defaultCellSize, cfg.CellSize)
	})

	t.Run("Reads env file", func(t *testing.T) {
		unsetEnv(t, "MAZE_WIDTH", "MAZE_HEIGHT", "MAZE_CELL_SIZE")
		path := writeFile(t, "maze.env", "MAZE_WIDTH=300\nMAZE_HEIGHT=200\nMAZE_CELL_SIZE=25\n")

		cfg, err := LoadEnv(path)
		require.NoError(t, err)
		assert.Equal(t, Maze{Width: 300, Height: 200, CellSize: 25}, cfg)
	})

	t.Run("Missing required variable", func(t *testing.T) {
		unsetEnv(t, "MAZE_WIDTH")
		t.Setenv("MAZE_HEIGHT", "100")

		_, err := LoadEnv(missing)
		assert.ErrorContains(t, err, "MAZE_WIDTH is not set")
	})

	t.Run("Non-integer variable", func(t *testing.T) {
		t.Setenv("MAZE_WIDTH", "wide")
		t.Setenv("MAZE_HEIGHT", "100")

		_, err := LoadEnv(missing)
		assert.ErrorContains(t, err, "MAZE_WIDTH must be an integer")
	})

	t.Run("Rejects non-positive values", func(t *testing.T) {
		cases := []struct {
			name                    string
			width, height, cellSize string
		}{
			{"negative width", "-100", "100", "20"},
			{"zero height", "100", "0", "20"},
			{"zero cell size", "100", "100", "0"},
			{"negative cell size", "100", "100", "-5"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Setenv("MAZE_WIDTH", tc.width)
				t.Setenv("MAZE_HEIGHT", tc.height)
				t.Setenv("MAZE_CELL_SIZE", tc.cellSize)

				cfg, err := LoadEnv(missing)
				assert.ErrorIs(t, err, ErrInvalidMaze)
				assert.Equal(t, Maze{}, cfg)
			})
		}
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("Reads YAML", func(t *testing.T) {
		path := writeFile(t, "maze.yaml", "maze:\n  width: 640\n  height: 480\n  cell_size: 32\n")

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, Maze{Width: 640, Height: 480, CellSize: 32}, cfg)
	})

	t.Run("Defaults cell size", func(t *testing.T) {
		path := writeFile(t, "maze.yaml", "maze:\n  width: 640\n  height: 480\n")

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, defaultCellSize, cfg.CellSize)
	})

	t.Run("Explicit zero cell size is rejected", func(t *testing.T) {
		path := writeFile(t, "maze.yaml", "maze:\n  width: 640\n  height: 480\n  cell_size: 0\n")

		_, err := LoadFile(path)
		assert.ErrorIs(t, err, ErrInvalidMaze)
	})

	t.Run("Rejects non-positive dimensions", func(t *testing.T) {
		for _, body := range []string{
			"maze:\n  width: -640\n  height: 480\n",
			"maze:\n  width: 640\n  height: 0\n",
			"maze:\n  width: 640\n  height: 480\n  cell_size: -1\n",
			"other: true\n",
		} {
			_, err := LoadFile(writeFile(t, "maze.yaml", body))
			assert.ErrorIs(t, err, ErrInvalidMaze, body)
		}
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := writeFile(t, "maze.yaml", "maze: [width\n")

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
