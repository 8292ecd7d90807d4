// Package pixtrail turns the pixels of an image into a GPS track: it walks
// every pixel of interest once, in an order that keeps consecutive points
// next to each other wherever it can, and writes the walk as GPX.
//
// 🚀 What is pixtrail?
//
//	A small toolkit and command that brings together:
//		• Grids: categorical 2D cells, connected regions, row-major scans
//		• Traversal: ring search around the current cell with a blind-scan fallback
//		• Raster input: PNG, JPEG, GIF, BMP, TIFF, WebP, classified by luma or expression
//		• Projection: cells to latitude/longitude, one point per second
//		• Output: Strava-flavoured GPX, plus PNG/SVG/PDF/HTML previews
//		• Batches: HCL or YAML job files run concurrently
//
// Under the hood, everything is organized in subpackages:
//
//	grid/       Grid type, bounds, counting, BlindScan, Components
//	traverse/   Ring, Rebase, Next, Start, Build and headings
//	raster/     image decoding and pixel classifiers
//	geo/        Projector and clocks
//	gpx/        Encode and Decode
//	trackstat/  jump and step-length statistics
//	preview/    track images and charts
//	config/     job files and validation
//	convert/    the end-to-end pipeline and batch runner
//	cmd/pixtrail  the command-line tool
//
// Quick ASCII example:
//
//	. # # # .        ring(1) around X, clockwise from east:
//	. . . # .
//	. . . . .          5 6 7
//	                   4 X 0
//	walk: (1,0) (2,0)  3 2 1
//	      (3,0) (3,1)
//
// Each step looks for the nearest traversable cell on growing square rings,
// starting from the direction it last moved in, so straight strokes stay
// straight and corners are taken without jumping.
//
//	go install github.com/katalvlaran/pixtrail/cmd/pixtrail@latest
//	pixtrail -i drawing.png -o drawing.gpx -n "My Walk" -preview drawing.svg
package pixtrail
