package tensor

import (
	"fmt"
	"math"
)

func shapeElemCount(shape []int64) (int, error) {
	total := int64(1)

	for i, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: shape %v has negative dimension at %d", ErrShape, shape, i)
		}

		if d != 0 && total > math.MaxInt64/d {
			return 0, fmt.Errorf("%w: shape %v too large", ErrShape, shape)
		}

		total *= d
	}

	if total > int64(^uint(0)>>1) {
		return 0, fmt.Errorf("%w: shape %v exceeds platform int size", ErrShape, shape)
	}

	return int(total), nil
}
