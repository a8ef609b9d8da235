// Package matrix provides a dense matrix over any scalar.Number and a
// partial-pivoting linear solver. The benchmark drivers instantiate it
// with native floats and with hubfloat.Float to compare error behavior
// of the same computation at different precisions.
package matrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/avdva/hubfloat/scalar"
)

var (
	// ErrDimension is returned when operand shapes do not agree.
	ErrDimension = errors.New("dimension mismatch")
	// ErrSingular is returned when elimination finds no usable pivot.
	ErrSingular = errors.New("singular matrix")
)

// Dense is a row-major rows×cols matrix of T.
type Dense[T scalar.Number[T]] struct {
	rows, cols int
	data       []T
}

// New returns a zero rows×cols matrix.
func New[T scalar.Number[T]](rows, cols int) *Dense[T] {
	if rows <= 0 || cols <= 0 {
		panic("matrix: non-positive dimensions")
	}
	return &Dense[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// FromRows builds a matrix from row slices of equal length.
func FromRows[T scalar.Number[T]](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDimension)
	}
	m := New[T](len(rows), len(rows[0]))
	for i, r := range rows {
		if len(r) != m.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimension, i, len(r), m.cols)
		}
		copy(m.data[i*m.cols:], r)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Dense[T]) At(i, j int) T { return m.data[i*m.cols+j] }

// Set assigns the element at row i, column j.
func (m *Dense[T]) Set(i, j int, v T) { m.data[i*m.cols+j] = v }

// Clone returns a deep copy of m.
func (m *Dense[T]) Clone() *Dense[T] {
	c := New[T](m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// MulVec returns the product m·x.
func (m *Dense[T]) MulVec(x []T) ([]T, error) {
	if len(x) != m.cols {
		return nil, fmt.Errorf("%w: vector length %d, want %d", ErrDimension, len(x), m.cols)
	}
	y := make([]T, m.rows)
	for i := 0; i < m.rows; i++ {
		var acc T
		for j := 0; j < m.cols; j++ {
			acc = acc.Add(m.At(i, j).Mul(x[j]))
		}
		y[i] = acc
	}
	return y, nil
}

// Mul returns the product m·other.
func (m *Dense[T]) Mul(other *Dense[T]) (*Dense[T], error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: %dx%d times %dx%d", ErrDimension, m.rows, m.cols, other.rows, other.cols)
	}
	p := New[T](m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.At(i, k)
			for j := 0; j < other.cols; j++ {
				p.Set(i, j, p.At(i, j).Add(a.Mul(other.At(k, j))))
			}
		}
	}
	return p, nil
}

// Solve returns x with a·x = b using Gaussian elimination with partial
// pivoting. a and b are left untouched; pivots are compared through
// Float64, so reduced-precision scalars pivot the same way native ones
// do.
func Solve[T scalar.Number[T]](a *Dense[T], b []T) ([]T, error) {
	n := a.rows
	if a.cols != n {
		return nil, fmt.Errorf("%w: matrix is %dx%d, want square", ErrDimension, a.rows, a.cols)
	}
	if len(b) != n {
		return nil, fmt.Errorf("%w: rhs length %d, want %d", ErrDimension, len(b), n)
	}
	m := a.Clone()
	x := make([]T, n)
	copy(x, b)
	for k := 0; k < n; k++ {
		p, best := k, math.Abs(m.At(k, k).Float64())
		for i := k + 1; i < n; i++ {
			if v := math.Abs(m.At(i, k).Float64()); v > best {
				p, best = i, v
			}
		}
		if best == 0 {
			return nil, ErrSingular
		}
		if p != k {
			for j := k; j < n; j++ {
				tmp := m.At(k, j)
				m.Set(k, j, m.At(p, j))
				m.Set(p, j, tmp)
			}
			x[k], x[p] = x[p], x[k]
		}
		piv := m.At(k, k)
		for i := k + 1; i < n; i++ {
			factor := m.At(i, k).Div(piv)
			for j := k; j < n; j++ {
				m.Set(i, j, m.At(i, j).Sub(factor.Mul(m.At(k, j))))
			}
			x[i] = x[i].Sub(factor.Mul(x[k]))
		}
	}
	for i := n - 1; i >= 0; i-- {
		acc := x[i]
		for j := i + 1; j < n; j++ {
			acc = acc.Sub(m.At(i, j).Mul(x[j]))
		}
		x[i] = acc.Div(m.At(i, i))
	}
	return x, nil
}
