// Package grid models the occupancy map that roomnav plans over: a
// rectangular Width×Height array of cells, each either free or blocked.
//
// What:
//
//   - Grid wraps a row-major []bool of blocked flags with bounds-checked access.
//   - From2D builds a Grid from [][]int (non-zero = blocked).
//   - FromImage / Load build a Grid from a decoded bitmap (red channel 0 = blocked).
//   - Clone and Invert give private working copies for decomposition.
//   - Components groups free cells into 4-connected islands.
//
// Why:
//
//   - Decomposition mutates a working copy; the caller's Grid stays untouched.
//   - Islands answer "can these two points ever be connected?" without a search.
//
// Complexity:
//
//   - From2D, Clone, Invert, FreeCount: O(W×H) time and memory.
//   - Components: O(W×H×4) time, O(W×H) memory.
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: Set addressed a cell outside the grid.
//   - ErrDecode: the bitmap could not be opened or decoded.
//
// A grid with zero rows or zero columns is valid and simply has no cells.
package grid
