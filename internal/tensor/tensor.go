// Package tensor provides the dense, row-major int64 arrays returned by the
// vocabulary encoders and accepted by the matrix decoders.
package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrRank is returned when an operation receives a tensor of the wrong rank.
	ErrRank = errors.New("tensor: unexpected rank")
	// ErrShape is returned when data does not fit a shape.
	ErrShape = errors.New("tensor: shape mismatch")
)

// Tensor is a dense, row-major int64 tensor.
type Tensor struct {
	shape []int64
	data  []int64
}

// New creates a tensor from data and shape.
func New(data []int64, shape []int64) (*Tensor, error) {
	total, err := shapeElemCount(shape)
	if err != nil {
		return nil, err
	}

	if len(data) != total {
		return nil, fmt.Errorf("%w: data length %d does not match shape %v (%d elements)", ErrShape, len(data), shape, total)
	}

	s := append([]int64(nil), shape...)
	d := append([]int64(nil), data...)

	return &Tensor{shape: s, data: d}, nil
}

// newOwned creates a Tensor taking ownership of data and shape without
// copying. len(data) must equal the product of shape.
func newOwned(data []int64, shape []int64) *Tensor {
	return &Tensor{shape: shape, data: data}
}

// Vector returns a 1-D tensor of length n filled with value.
// Negative lengths are clamped to zero.
func Vector(n int, value int64) *Tensor {
	n = max(n, 0)
	data := make([]int64, n)
	fill(data, value)

	return newOwned(data, []int64{int64(n)})
}

// Matrix returns a rows x cols tensor filled with value.
// Negative dimensions are clamped to zero.
func Matrix(rows, cols int, value int64) *Tensor {
	rows, cols = max(rows, 0), max(cols, 0)
	data := make([]int64, rows*cols)
	fill(data, value)

	return newOwned(data, []int64{int64(rows), int64(cols)})
}

// Shape returns a copy of the tensor's dimensions.
func (t *Tensor) Shape() []int64 {
	if t == nil {
		return nil
	}

	return append([]int64(nil), t.shape...)
}

// RawData returns the underlying data slice.
// Callers must treat it as read-only.
func (t *Tensor) RawData() []int64 {
	if t == nil {
		return nil
	}

	return t.data
}

// ElemCount returns the number of stored elements.
func (t *Tensor) ElemCount() int {
	if t == nil {
		return 0
	}

	return len(t.data)
}

// Rank returns the number of dimensions; a nil tensor has rank 0.
func (t *Tensor) Rank() int {
	if t == nil {
		return 0
	}

	return len(t.shape)
}

// Rows returns every row of a rank-2 tensor as slices aliasing its storage.
func (t *Tensor) Rows() ([][]int64, error) {
	if t.Rank() != 2 {
		return nil, fmt.Errorf("%w: rows requires rank 2, got %d", ErrRank, t.Rank())
	}

	rows, cols := int(t.shape[0]), int(t.shape[1])
	out := make([][]int64, rows)

	for i := range rows {
		out[i] = t.data[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return out, nil
}

func fill(data []int64, value int64) {
	if value == 0 {
		return
	}

	for i := range data {
		data[i] = value
	}
}
