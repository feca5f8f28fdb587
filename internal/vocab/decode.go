package vocab

import (
	"fmt"

	"github.com/example/go-vocabindex/internal/tensor"
)

// IndexesToObjects returns the objects for each known index in indexes, in
// order. Unknown indexes, including the padding sentinel, are dropped.
func (x *Index[T]) IndexesToObjects(indexes []int64) []T {
	out := make([]T, 0, len(indexes))

	for _, i := range indexes {
		if obj, ok := x.ObjectAt(i); ok {
			out = append(out, obj)
		}
	}

	return out
}

// IndexMatrixToObjects applies IndexesToObjects to every row of a rank-2
// tensor. Rows may decode to different lengths.
func (x *Index[T]) IndexMatrixToObjects(m *tensor.Tensor) ([][]T, error) {
	rows, err := m.Rows()
	if err != nil {
		return nil, fmt.Errorf("decode index matrix: %w", err)
	}

	out := make([][]T, len(rows))
	for i, row := range rows {
		out[i] = x.IndexesToObjects(row)
	}

	return out, nil
}

// BinaryVectorToObjects returns, in index order, the objects whose position
// in vec holds exactly 1. Any other value counts as unset.
func (x *Index[T]) BinaryVectorToObjects(vec []int64) []T {
	out := []T{}

	for pos, v := range vec {
		if v != 1 {
			continue
		}

		if obj, ok := x.ObjectAt(int64(pos)); ok {
			out = append(out, obj)
		}
	}

	return out
}

// BinaryMatrixToObjects applies BinaryVectorToObjects to every row of a
// rank-2 tensor.
func (x *Index[T]) BinaryMatrixToObjects(m *tensor.Tensor) ([][]T, error) {
	rows, err := m.Rows()
	if err != nil {
		return nil, fmt.Errorf("decode binary matrix: %w", err)
	}

	out := make([][]T, len(rows))
	for i, row := range rows {
		out[i] = x.BinaryVectorToObjects(row)
	}

	return out, nil
}
