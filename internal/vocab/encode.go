package vocab

import (
	"github.com/example/go-vocabindex/internal/tensor"
)

// ObjectsToIndexes returns a 1-D tensor with the index of each object in seq,
// using NotInIndex() for objects outside the vocabulary. Length and order
// match seq.
func (x *Index[T]) ObjectsToIndexes(seq []T) *tensor.Tensor {
	out := tensor.Vector(len(seq), 0)
	x.fillIndexes(out.RawData(), seq)

	return out
}

// ObjectsToIndexMatrix returns a 2-D tensor with one row per sequence and as
// many columns as the longest sequence. Rows hold the mapped indexes and are
// right-padded with NotInIndex().
//
// An empty batch yields a 0x0 matrix.
func (x *Index[T]) ObjectsToIndexMatrix(seqs [][]T) *tensor.Tensor {
	width := 0
	for _, seq := range seqs {
		width = max(width, len(seq))
	}

	out := tensor.Matrix(len(seqs), width, x.NotInIndex())
	data := out.RawData()

	for i, seq := range seqs {
		x.fillIndexes(data[i*width:i*width+len(seq)], seq)
	}

	return out
}

// ObjectsToBinaryVector returns a 1-D tensor of length Width() with a 1 at
// the index of every in-vocabulary object in seq. Unknown objects are
// skipped and repeats set the same position once.
func (x *Index[T]) ObjectsToBinaryVector(seq []T) *tensor.Tensor {
	out := tensor.Vector(x.Width(), 0)
	x.fillBinary(out.RawData(), seq)

	return out
}

// ObjectsToBinaryMatrix returns a len(seqs) x Width() tensor whose rows are
// ObjectsToBinaryVector of each sequence.
func (x *Index[T]) ObjectsToBinaryMatrix(seqs [][]T) *tensor.Tensor {
	width := x.Width()
	out := tensor.Matrix(len(seqs), width, 0)
	data := out.RawData()

	for i, seq := range seqs {
		x.fillBinary(data[i*width:(i+1)*width], seq)
	}

	return out
}

func (x *Index[T]) fillIndexes(dst []int64, seq []T) {
	for i, obj := range seq {
		dst[i] = x.lookup(obj)
	}
}

func (x *Index[T]) fillBinary(dst []int64, seq []T) {
	for _, obj := range seq {
		i, ok := x.toIndex[obj]
		if !ok || i < 0 || i >= int64(len(dst)) {
			continue
		}

		dst[i] = 1
	}
}
