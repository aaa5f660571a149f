// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense/NewZeros: O(r*c) zero-init; NewFromRows: O(r*c) copy; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"          // method tag used in error wrappers
	ctxSet      = "Set"         // method tag used in error wrappers
	ctxApply    = "Apply"       // method tag used in error wrappers
	ctxFromRows = "NewFromRows" // ctor tag
	ctxVector   = "NewVector"   // ctor tag
	ctxNewZeros = "NewZeros"    // ctor tag
	ctxNewDense = "NewDense"    // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w". Preserves the sentinel for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
type Dense struct {
	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and resolve the numeric policy.
//
// Behavior highlights:
//   - Strict constructor: forbids empty dimensions to avoid accidental 0×0 matrices.
//     Use NewZeros when a zero-area shape is legal for the caller.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewDense, rows, cols, ErrInvalidDimensions)
	}

	return newDenseWithOptions(rows, cols, gatherOptions(opts...)), nil
}

// NewZeros returns a rows×cols matrix with every cell 0.0.
// Zero-area shapes (0×N, N×0) are legal; only negative dimensions fail.
//
// Errors:
//   - ErrInvalidDimensions when rows<0 or cols<0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewZeros, rows, cols, ErrInvalidDimensions)
	}

	return newDenseWithOptions(rows, cols, gatherOptions(opts...)), nil
}

// newDenseZeroOK is the internal allocation used by kernels. Shapes come from
// already-validated operands, so rows,cols ≥ 0 is guaranteed by the caller.
func newDenseZeroOK(rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// newDenseWithOptions allocates and applies a resolved policy.
func newDenseWithOptions(rows, cols int, o Options) *Dense {
	m := newDenseZeroOK(rows, cols)
	m.validateNaNInf = o.validateNaNInf

	return m
}

// NewFromRows copies a two-dimensional slice into a new Dense.
//
// Implementation:
//   - Stage 1: reject an empty row set or zero-length first row (ErrBadShape).
//   - Stage 2: verify every row has len(rows[0]) elements (ErrDimensionMismatch).
//   - Stage 3: copy row by row into the flat buffer, enforcing the numeric policy.
//
// Behavior highlights:
//   - The input is never aliased; later edits to rows do not affect the result.
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch, ErrNaNInf (policy ON and non-finite input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrBadShape)
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), cols, ErrDimensionMismatch)
		}
	}

	m := newDenseWithOptions(len(rows), cols, gatherOptions(opts...))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < cols; j++ {
			if m.validateNaNInf && !isFinite(rows[i][j]) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxFromRows, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// NewVector wraps a flat slice as a 1×N (RowVector) or N×1 (ColumnVector) matrix.
// The slice is copied. A nil or empty slice yields a legal zero-area vector.
//
// Errors:
//   - ErrUnknownOrientation, ErrNaNInf (policy ON).
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVector(values []float64, o Orientation, opts ...Option) (*Dense, error) {
	var rows, cols int
	switch o {
	case ColumnVector:
		rows, cols = len(values), 1
	case RowVector:
		rows, cols = 1, len(values)
	default:
		return nil, fmt.Errorf("%s(%d): %w", ctxVector, int(o), ErrUnknownOrientation)
	}

	m := newDenseWithOptions(rows, cols, gatherOptions(opts...))
	if m.validateNaNInf {
		for k, v := range values {
			if !isFinite(v) {
				return nil, fmt.Errorf("%s[%d]: %w", ctxVector, k, ErrNaNInf)
			}
		}
	}
	copy(m.data, values)

	return m, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the policy is ON.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant used inside the package.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Values returns a row-major copy of the backing buffer. For a row or column
// vector this is the vector itself.
// Complexity: O(r*c).
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// String renders rows as lines with comma-separated values, for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//     For all-or-nothing semantics, transform a clone and swap on success.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value (policy ON).
//
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64

	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && !isFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
