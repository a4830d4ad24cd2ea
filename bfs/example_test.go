package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleShortestCost compares 4-way and 8-way optimal costs around a wall.
func ExampleShortestCost() {
	g, _ := grid.ParseLayout([]string{
		"S   ",
		"### ",
		"   G",
	})
	start, _ := g.Start()

	four, _ := bfs.ShortestCost(start, g.IsGoal, g.Successors, false)
	eight, _ := bfs.ShortestCost(start, g.IsGoal, g.Successors, true)
	fmt.Println(four, eight)
	// Output: 5 4
}

// ExampleResult_PathTo reconstructs a BFS tree path.
func ExampleResult_PathTo() {
	g, _ := grid.New(2, 3)
	res, _ := bfs.Search(grid.Location{}, nil, g.Successors)

	path, _ := res.PathTo(grid.Location{Row: 1, Column: 2})
	fmt.Println(path)
	// Output: [(0,0) (1,0) (1,1) (1,2)]
}
