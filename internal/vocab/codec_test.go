package vocab_test

import (
	"errors"
	"slices"
	"testing"
	"testing/quick"

	"github.com/example/go-vocabindex/internal/tensor"
	"github.com/example/go-vocabindex/internal/vocab"
	"github.com/stretchr/testify/require"
)

func TestObjectsToIndexes_OutOfVocabulary(t *testing.T) {
	idx := vocab.New([]string{"a", "b"}, 0)

	got := idx.ObjectsToIndexes([]string{"a", "z"})

	require.Equal(t, []int64{2}, got.Shape())
	require.Equal(t, []int64{0, -1}, got.RawData())
}

func TestObjectsToIndexes_PreservesOrderAndDuplicates(t *testing.T) {
	idx := vocab.New([]string{"a", "b", "c"}, 1)

	got := idx.ObjectsToIndexes([]string{"c", "c", "a", "q", "b"})

	require.Equal(t, []int64{3, 3, 1, 0, 2}, got.RawData())
}

func TestObjectsToIndexMatrix_Padding(t *testing.T) {
	idx := vocab.New([]string{"a", "b"}, 0)

	got := idx.ObjectsToIndexMatrix([][]string{{"a"}, {"a", "b"}})

	require.Equal(t, []int64{2, 2}, got.Shape())
	require.Equal(t, []int64{0, -1, 0, 1}, got.RawData())
}

func TestObjectsToIndexMatrix_EmptyRowsAndOOV(t *testing.T) {
	idx := vocab.New([]string{"a", "b"}, 2)

	got := idx.ObjectsToIndexMatrix([][]string{{}, {"b", "x", "a"}, {"a"}})

	require.Equal(t, []int64{3, 3}, got.Shape())
	require.Equal(t, []int64{
		1, 1, 1,
		3, 1, 2,
		2, 1, 1,
	}, got.RawData())
}

func TestObjectsToIndexMatrix_EmptyBatch(t *testing.T) {
	idx := vocab.New([]string{"a"}, 0)

	got := idx.ObjectsToIndexMatrix(nil)

	require.Equal(t, []int64{0, 0}, got.Shape())
	require.Equal(t, 0, got.ElemCount())
}

func TestObjectsToBinaryVector(t *testing.T) {
	idx := vocab.New([]string{"a", "b", "c"}, 0)

	got := idx.ObjectsToBinaryVector([]string{"a", "c", "a"})

	require.Equal(t, []int64{1, 0, 1}, got.RawData())
	require.Equal(t, []string{"a", "c"}, idx.BinaryVectorToObjects(got.RawData()))
}

func TestObjectsToBinaryVector_StartReservesPositions(t *testing.T) {
	idx := vocab.New([]string{"x"}, 1)

	got := idx.ObjectsToBinaryVector([]string{"x"})

	require.Equal(t, []int64{0, 1}, got.RawData())
}

func TestObjectsToBinaryVector_SkipsUnknown(t *testing.T) {
	idx := vocab.New([]string{"a", "b"}, 0)

	got := idx.ObjectsToBinaryVector([]string{"zz", "b"})

	require.Equal(t, []int64{0, 1}, got.RawData())
}

func TestObjectsToBinaryMatrix_UniformWidth(t *testing.T) {
	idx := vocab.New([]string{"a", "b", "c"}, 1)

	got := idx.ObjectsToBinaryMatrix([][]string{{"c"}, {}, {"a", "b", "c", "d"}})

	require.Equal(t, []int64{3, 4}, got.Shape())
	require.Equal(t, []int64{
		0, 0, 0, 1,
		0, 0, 0, 0,
		0, 1, 1, 1,
	}, got.RawData())
}

func TestObjectsToBinaryMatrix_EmptyBatch(t *testing.T) {
	idx := vocab.New([]string{"a", "b"}, 0)

	got := idx.ObjectsToBinaryMatrix(nil)

	require.Equal(t, []int64{0, 2}, got.Shape())
}

func TestEmptyVocabulary_Encoders(t *testing.T) {
	idx := vocab.New([]string(nil), 0)
	seq := []string{"a", "b"}

	require.Equal(t, []int64{-1, -1}, idx.ObjectsToIndexes(seq).RawData())
	require.Equal(t, []int64{-1, -1, -1, -1}, idx.ObjectsToIndexMatrix([][]string{seq, seq}).RawData())
	require.Equal(t, 0, idx.ObjectsToBinaryVector(seq).ElemCount())
	require.Equal(t, []int64{2, 0}, idx.ObjectsToBinaryMatrix([][]string{seq, seq}).Shape())
}

func TestEmptyVocabulary_WithStartIsAllZero(t *testing.T) {
	idx := vocab.New([]string(nil), 2)

	require.Equal(t, []int64{0, 0}, idx.ObjectsToBinaryVector([]string{"a"}).RawData())
	require.Equal(t, []int64{1}, idx.ObjectsToIndexes([]string{"a"}).RawData())
}

func TestIndexesToObjects_DropsUnknown(t *testing.T) {
	idx := vocab.New([]string{"a", "b"}, 0)

	got := idx.IndexesToObjects([]int64{1, -1, 7, 0})

	require.Equal(t, []string{"b", "a"}, got)
}

func TestIndexMatrixToObjects_RaggedRows(t *testing.T) {
	idx := vocab.New([]string{"a", "b"}, 0)
	m := idx.ObjectsToIndexMatrix([][]string{{"a"}, {"a", "b"}, {}})

	got, err := idx.IndexMatrixToObjects(m)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a"}, {"a", "b"}, {}}, got)
}

func TestIndexMatrixToObjects_RejectsVector(t *testing.T) {
	idx := vocab.New([]string{"a"}, 0)

	_, err := idx.IndexMatrixToObjects(tensor.Vector(2, 0))
	require.Error(t, err)
	require.True(t, errors.Is(err, tensor.ErrRank))
}

func TestBinaryVectorToObjects_ExactOne(t *testing.T) {
	idx := vocab.New([]string{"a", "b", "c", "d"}, 0)

	got := idx.BinaryVectorToObjects([]int64{1, 2, -1, 1, 1})

	require.Equal(t, []string{"a", "d"}, got)
}

func TestBinaryVectorToObjects_SkipsReservedPositions(t *testing.T) {
	idx := vocab.New([]string{"x", "y"}, 2)

	got := idx.BinaryVectorToObjects([]int64{1, 1, 0, 1})

	require.Equal(t, []string{"y"}, got)
}

func TestBinaryMatrixToObjects(t *testing.T) {
	idx := vocab.New([]string{"a", "b", "c"}, 0)
	m := idx.ObjectsToBinaryMatrix([][]string{{"c", "a"}, {}, {"b", "b"}})

	got, err := idx.BinaryMatrixToObjects(m)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "c"}, {}, {"b"}}, got)

	_, err = idx.BinaryMatrixToObjects(nil)
	require.ErrorIs(t, err, tensor.ErrRank)
}

// Any sequence drawn from the vocabulary survives an index round trip.
func TestProperty_IndexRoundTrip(t *testing.T) {
	prop := func(vocabRaw []uint16, picks []uint16, start uint8) bool {
		if len(vocabRaw) == 0 {
			return true
		}

		idx := vocab.New(vocabRaw, int64(start))

		seq := make([]uint16, len(picks))
		for i, p := range picks {
			seq[i] = vocabRaw[int(p)%len(vocabRaw)]
		}

		return slices.Equal(seq, idx.IndexesToObjects(idx.ObjectsToIndexes(seq).RawData()))
	}

	require.NoError(t, quick.Check(prop, nil))
}

// Padded rows decode back to the input ragged batch.
func TestProperty_IndexMatrixRoundTrip(t *testing.T) {
	prop := func(vocabRaw []uint8, lens []uint8) bool {
		if len(vocabRaw) == 0 {
			return true
		}

		idx := vocab.New(vocabRaw, 0)

		batch := make([][]uint8, len(lens))
		for i, n := range lens {
			batch[i] = make([]uint8, int(n)%8)
			for j := range batch[i] {
				batch[i][j] = vocabRaw[(i+j)%len(vocabRaw)]
			}
		}

		got, err := idx.IndexMatrixToObjects(idx.ObjectsToIndexMatrix(batch))
		if err != nil || len(got) != len(batch) {
			return false
		}

		for i := range batch {
			if !slices.Equal(batch[i], got[i]) {
				return false
			}
		}

		return true
	}

	require.NoError(t, quick.Check(prop, nil))
}

// Repeated objects encode the same one-hot vector as their deduplicated set.
func TestProperty_BinaryIdempotentDuplicates(t *testing.T) {
	prop := func(vocabRaw []uint8, seq []uint8) bool {
		idx := vocab.New(vocabRaw, 1)

		dedup := slices.Clone(seq)
		slices.Sort(dedup)
		dedup = slices.Compact(dedup)

		doubled := append(slices.Clone(seq), seq...)

		a := idx.ObjectsToBinaryVector(doubled).RawData()
		b := idx.ObjectsToBinaryVector(dedup).RawData()

		return slices.Equal(a, b)
	}

	require.NoError(t, quick.Check(prop, nil))
}
