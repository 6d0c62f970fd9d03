// Package particles simulates the decorative particle network drawn behind
// the portfolio page.
//
// A Field owns a fixed-size set of particles bounded by the canvas. Each Step
// moves every particle by its velocity (one step per frame, no delta-time
// scaling), bounces it off the canvas edges, and links nearby pairs. The
// pairwise pass is O(n²); at the default 70 particles that is 2415 pairs per
// frame.
package particles
