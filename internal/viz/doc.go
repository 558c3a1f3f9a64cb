// Package viz renders Ising lattices in the terminal.
//
// The package provides:
//
//   - [RenderLattice]: one colored block per spin, for small lattices
//   - [Canvas]: Braille-based dot canvas, 8 spins per character, for large ones
//   - [RowProfile] and [ProfileChart]: per-row spin sums of a single snapshot
//   - [LiveModel]: a Bubble Tea program stepping a System one sweep per frame
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Re-randomize the lattice
//	T     - Cycle color themes
//	Q     - Quit
package viz
