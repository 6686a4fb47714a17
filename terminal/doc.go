// Package terminal hosts the blob field on a tcell screen.
//
// Features:
//   - Half-block rendering: every cell shows two vertically stacked pixels
//   - Supersampled raster resampled down to the cell grid
//   - Resize notifications for the animator
//   - Focus loss pauses the frame loop, focus gain resumes it
//   - Clean terminal restoration on exit/panic
package terminal
