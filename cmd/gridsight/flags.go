package main

import "flag"

// Command-line flags controlling the grid, wall generation, and
// optional debug surfaces.
var (
	// gridWidthFlag and gridHeightFlag size the grid in cells.
	gridWidthFlag  = flag.Int("grid-w", defaultGridW, "grid width in cells")
	gridHeightFlag = flag.Int("grid-h", defaultGridH, "grid height in cells")

	// radiusFlag sets the initial view radius; the mouse wheel adjusts it live.
	radiusFlag = flag.Int("radius", defaultRadius, "initial view radius in cells")

	// scatterFlag controls how many random wall toggles seed the grid.
	scatterFlag = flag.Int("scatter", defaultScatter, "random wall toggles at startup")

	// segmentWallsFlag switches wall generation to straight segments.
	segmentWallsFlag = flag.Bool("segment-walls", false, "generate straight wall segments instead of random scatter")

	// seedFlag fixes the wall generation seed for reproducible layouts.
	seedFlag = flag.Int64("seed", 0, "wall generation seed (0 derives one from the clock)")

	// debugFlag enables the FPS and recompute overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and recompute overlay")

	// httpAddrFlag serves the read-only state API while the demo runs.
	httpAddrFlag = flag.String("http", "", "serve the debug state API on this address (e.g. :8080)")

	// cpuProfileFlag captures a CPU profile for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
