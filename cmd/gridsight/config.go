package main

// Demo configuration constants. These define the default grid size,
// view radius, wall generation, and the pixel footprint of a cell in
// the logical screen.
const (
	defaultGridW   = 30
	defaultGridH   = 30
	defaultRadius  = 5
	defaultScatter = 100

	segmentCount        = 8
	segmentMinLen       = 4
	segmentMaxLen       = 12
	segmentThickness    = 1
	segmentExclusionRad = 3

	cellPixels  = 16
	windowScale = 2
)
