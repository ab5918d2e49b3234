package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// defaultCellSize is used when MAZE_CELL_SIZE is not set.
const defaultCellSize = 20

// Maze holds the configured maze dimensions.
// Its fields line up with maze.Config so the two convert directly.
type Maze struct {
	Width    int `yaml:"width"`     // Overall maze width
	Height   int `yaml:"height"`    // Overall maze height
	CellSize int `yaml:"cell_size"` // Divisor producing column and row counts
}

// error types
var (
	ErrInvalidMaze = errors.New("invalid maze configuration")
)

// file is the layout of a YAML configuration file.
// CellSize is a pointer so that an explicit zero can be told apart from a missing value.
type file struct {
	Maze struct {
		Width    int  `yaml:"width"`
		Height   int  `yaml:"height"`
		CellSize *int `yaml:"cell_size"`
	} `yaml:"maze"`
}

// Validate rejects non-positive dimensions and cell sizes.
func (m Maze) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: width %d and height %d must be positive", ErrInvalidMaze, m.Width, m.Height)
	}
	if m.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidMaze, m.CellSize)
	}
	return nil
}

// LoadEnv reads the maze dimensions from environment variables.
// It loads the given .env files first (".env" when none are given); a missing file is not an error.
func LoadEnv(envFiles ...string) (Maze, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Maze{}, fmt.Errorf("loading env file: %w", err)
		}
		log.Printf("%s[INFO]%s env file not found, using process environment", LogInfoColor, LogColorReset)
	}

	width, err := getEnvAsInt("MAZE_WIDTH")
	if err != nil {
		return Maze{}, err
	}
	height, err := getEnvAsInt("MAZE_HEIGHT")
	if err != nil {
		return Maze{}, err
	}
	cellSize, err := getEnvAsIntWithDefault("MAZE_CELL_SIZE", defaultCellSize)
	if err != nil {
		return Maze{}, err
	}

	cfg := Maze{Width: width, Height: height, CellSize: cellSize}
	if err := cfg.Validate(); err != nil {
		return Maze{}, err
	}
	return cfg, nil
}

// LoadFile reads the maze dimensions from a YAML file. A missing cell_size falls back to the default.
func LoadFile(path string) (Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Maze{}, fmt.Errorf("reading config file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Maze{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg := Maze{Width: f.Maze.Width, Height: f.Maze.Height, CellSize: defaultCellSize}
	if f.Maze.CellSize != nil {
		cfg.CellSize = *f.Maze.CellSize
	}
	if err := cfg.Validate(); err != nil {
		return Maze{}, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// getEnvAsInt retrieves the value of an environment variable as an integer.
func getEnvAsInt(key string) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return 0, fmt.Errorf("environment variable %s is not set", key)
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvAsIntWithDefault retrieves an integer environment variable or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	if _, exists := os.LookupEnv(key); !exists {
		return defaultValue, nil
	}
	return getEnvAsInt(key)
}
