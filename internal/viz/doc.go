// Package viz renders experiment results in the terminal.
//
//   - [RenderTable]: a bordered comparison table with highlighted deviations
//   - [PlotSeries]: an ASCII line chart of one or more columns
//   - [Explorer]: a Bubble Tea program for stepping through a run
//
// # Explorer Key Bindings
//
//	- / +  Halve / double the step (or node count for interpolation)
//	m      Cycle the method
//	f      Cycle the function
//	t      Cycle color themes
//	q      Quit
package viz
