package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
	"github.com/katalvlaran/gridpath/scenario"
)

// plan is the grid plus the resolved search settings.
type plan struct {
	grid     *grid.Grid
	kind     heuristic.Kind
	diagonal bool
}

// execute builds the grid, solves it and writes the report to outW.
// An unreachable goal is reported, not returned as an error.
func execute(outW io.Writer, cfg *Config, logger *slog.Logger) error {
	p, err := load(cfg, logger)
	if err != nil {
		return err
	}

	res, err := astar.Solve(p.grid, p.kind,
		astar.WithDiagonal(p.diagonal),
		astar.WithLogger(logger),
	)
	switch {
	case errors.Is(err, astar.ErrNoPath):
		fmt.Fprint(outW, p.grid)
		fmt.Fprintln(outW, "no path found")
		fmt.Fprintf(outW, "expansions: %d\n", res.Stats.Expansions)
		return nil
	case err != nil:
		return err
	}

	fmt.Fprint(outW, p.grid)
	fmt.Fprintf(outW, "cost: %d\n", res.Cost)
	fmt.Fprintf(outW, "path length: %d\n", len(res.Path))
	fmt.Fprintf(outW, "expansions: %d\n", res.Stats.Expansions)
	fmt.Fprintf(outW, "elapsed: %s\n", res.Stats.Elapsed)

	if cfg.Verify {
		return verify(outW, p, res, logger)
	}

	return nil
}

// load resolves the grid and settings from the scenario file or the random-grid flags.
func load(cfg *Config, logger *slog.Logger) (*plan, error) {
	p := &plan{kind: heuristic.Euclidean}

	if cfg.ScenarioPath != "" {
		s, err := scenario.Load(cfg.ScenarioPath)
		if err != nil {
			return nil, err
		}
		if p.grid, err = s.Build(); err != nil {
			return nil, err
		}
		p.kind, p.diagonal = s.Heuristic, s.Diagonal
		logger.Info("Scenario loaded.", "path", cfg.ScenarioPath, "rows", s.Rows, "columns", s.Columns)
	} else {
		g, err := grid.New(cfg.Rows, cfg.Columns)
		if err != nil {
			return nil, err
		}
		g.SetStart(grid.Location{Row: 0, Column: 0})
		g.SetGoal(grid.Location{Row: cfg.Rows - 1, Column: cfg.Columns - 1})
		if err = g.FillRandom(cfg.Density, grid.NewRand(cfg.Seed)); err != nil {
			return nil, err
		}
		p.grid = g
		logger.Info("Random grid generated.", "rows", cfg.Rows, "columns", cfg.Columns, "density", cfg.Density, "seed", cfg.Seed)
	}

	if cfg.Heuristic != nil {
		p.kind = *cfg.Heuristic
	}
	if cfg.Diagonal != nil {
		p.diagonal = *cfg.Diagonal
	}
	if !p.kind.Admissible(p.diagonal) {
		logger.Warn("Heuristic is not admissible for this movement model; the path may be longer than optimal.",
			"heuristic", p.kind.String(), "diagonal", p.diagonal)
	}

	return p, nil
}

// verify compares the A* cost with an exhaustive breadth-first search.
func verify(outW io.Writer, p *plan, res astar.Result, logger *slog.Logger) error {
	start, _ := p.grid.Start()
	optimal, err := bfs.ShortestCost(start, p.grid.IsGoal, p.grid.Successors, p.diagonal)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	fmt.Fprintf(outW, "optimal: %d\n", optimal)
	if res.Cost != optimal {
		logger.Warn("Path is longer than optimal.", "cost", res.Cost, "optimal", optimal, "heuristic", p.kind.String())
	}

	return nil
}
