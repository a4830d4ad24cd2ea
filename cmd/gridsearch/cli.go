package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command configuration.
type Config struct {
	ScenarioPath string

	// Random grid, used when ScenarioPath is empty.
	Rows    int
	Columns int
	Density float64
	Seed    int64

	// Overrides; nil means "take the scenario value".
	Heuristic *heuristic.Kind
	Diagonal  *bool

	Verify    bool
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gridsearch", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridsearch - A* path finding on occupancy grids.

Usage:
  gridsearch [options] [SCENARIO]

Arguments:
  SCENARIO
    Path to an .hcl scenario file. Without one, a random grid is generated
    from -rows, -columns, -density and -seed.

Options:
`)
		flagSet.PrintDefaults()
	}

	scenarioFlag := flagSet.String("scenario", "", "Path to the scenario file.")
	rowsFlag := flagSet.Int("rows", 10, "Rows of the random grid.")
	columnsFlag := flagSet.Int("columns", 10, "Columns of the random grid.")
	densityFlag := flagSet.Float64("density", grid.DefaultDensity, "Obstacle density of the random grid, within [0, 1].")
	seedFlag := flagSet.Int64("seed", 0, "Seed of the random grid. 0 selects the default seed.")
	heuristicFlag := flagSet.String("heuristic", "euclidean", "Heuristic. Options: 'euclidean', 'manhattan', 'chebyshev'.")
	diagonalFlag := flagSet.Bool("diagonal", false, "Allow diagonal moves.")
	verifyFlag := flagSet.Bool("verify", false, "Compare the path cost against an exhaustive breadth-first search.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := &Config{
		ScenarioPath: *scenarioFlag,
		Rows:         *rowsFlag,
		Columns:      *columnsFlag,
		Density:      *densityFlag,
		Seed:         *seedFlag,
		Verify:       *verifyFlag,
	}
	if cfg.ScenarioPath == "" && flagSet.NArg() > 0 {
		cfg.ScenarioPath = flagSet.Arg(0)
	}

	if cfg.ScenarioPath == "" {
		if cfg.Rows < 1 || cfg.Columns < 1 {
			return nil, false, &ExitError{Code: 2, Message: "invalid grid size: rows and columns must be positive"}
		}
		if cfg.Density < 0 || cfg.Density > 1 {
			return nil, false, &ExitError{Code: 2, Message: "invalid density: must be within [0, 1]"}
		}
	}

	// Without a scenario the flag defaults apply; with one, only explicit flags override.
	if set["heuristic"] || cfg.ScenarioPath == "" {
		kind, err := heuristic.ParseKind(*heuristicFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: "invalid heuristic: must be 'euclidean', 'manhattan' or 'chebyshev'"}
		}
		cfg.Heuristic = &kind
	}
	if set["diagonal"] || cfg.ScenarioPath == "" {
		cfg.Diagonal = diagonalFlag
	}

	cfg.LogFormat = strings.ToLower(*logFormatFlag)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(*logLevelFlag)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	slog.Debug("CLI parser finished successfully.", "scenario", cfg.ScenarioPath)
	return cfg, false, nil
}
