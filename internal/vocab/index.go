// Package vocab maps a vocabulary of comparable objects onto a contiguous
// range of int64 indexes and converts object sequences to and from index
// and one-hot (binary) arrays.
//
// Indexes are assigned in first-occurrence order starting at a caller-chosen
// offset. The value start-1 is reserved as the out-of-vocabulary sentinel
// returned by the index encoders and used to pad ragged batches.
//
// An Index is immutable once built and may be read from multiple goroutines
// without locking.
package vocab

import (
	"iter"
	"slices"
)

// Index is a bidirectional object<->index mapping.
//
// The forward map and the inverse slice are built together and never
// modified afterwards; each is the exact inverse of the other.
type Index[T comparable] struct {
	start    int64
	toIndex  map[T]int64
	toObject []T // toObject[i] is the object with index start+i
}

// New builds an Index over vocab. Each distinct object gets the next index
// beginning at start; repeated objects keep their first index.
// An empty vocab is valid and yields an Index with VocabSize 0.
func New[T comparable](vocab []T, start int64) *Index[T] {
	return FromSeq(slices.Values(vocab), start)
}

// FromSeq builds an Index from a finite iterator. See New.
func FromSeq[T comparable](seq iter.Seq[T], start int64) *Index[T] {
	idx := &Index[T]{
		start:   start,
		toIndex: make(map[T]int64),
	}

	for obj := range seq {
		if _, seen := idx.toIndex[obj]; seen {
			continue
		}

		idx.toIndex[obj] = start + int64(len(idx.toObject))
		idx.toObject = append(idx.toObject, obj)
	}

	return idx
}

// Start returns the first assigned index.
func (x *Index[T]) Start() int64 { return x.start }

// VocabSize returns the number of distinct indexed objects.
func (x *Index[T]) VocabSize() int { return len(x.toObject) }

// NotInIndex returns the out-of-vocabulary sentinel, Start()-1.
func (x *Index[T]) NotInIndex() int64 { return x.start - 1 }

// Width returns the length of a one-hot vector: VocabSize()+Start().
// Positions below Start() are never set, so position equals index.
func (x *Index[T]) Width() int {
	return max(len(x.toObject)+int(x.start), 0)
}

// IndexOf returns the index of obj and whether it is in the vocabulary.
func (x *Index[T]) IndexOf(obj T) (int64, bool) {
	i, ok := x.toIndex[obj]
	return i, ok
}

// Contains reports whether obj is in the vocabulary.
func (x *Index[T]) Contains(obj T) bool {
	_, ok := x.toIndex[obj]
	return ok
}

// ObjectAt returns the object assigned to index i, if any.
func (x *Index[T]) ObjectAt(i int64) (T, bool) {
	off := i - x.start
	if off < 0 || off >= int64(len(x.toObject)) {
		var zero T
		return zero, false
	}

	return x.toObject[off], true
}

// Objects returns a copy of the vocabulary in index order.
func (x *Index[T]) Objects() []T {
	return slices.Clone(x.toObject)
}

// All iterates over (index, object) pairs in index order.
func (x *Index[T]) All() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		for i, obj := range x.toObject {
			if !yield(x.start+int64(i), obj) {
				return
			}
		}
	}
}

func (x *Index[T]) lookup(obj T) int64 {
	if i, ok := x.toIndex[obj]; ok {
		return i
	}

	return x.NotInIndex()
}
