package main

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/example/go-vocabindex/internal/safetensors"
	"github.com/example/go-vocabindex/internal/tensor"
	"github.com/example/go-vocabindex/internal/testutil"
	"github.com/example/go-vocabindex/internal/vocab"
)

func TestDecode_TextIndexRows(t *testing.T) {
	vocabPath := testutil.WriteFile(t, "vocab.txt", "a b")

	out, err := runCLI(t, "0 -1\n0 1\n7\n", "decode", "--vocab-path", vocabPath)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if want := "a\na b\n\n"; out != want {
		t.Fatalf("decode output = %q, want %q", out, want)
	}
}

func TestDecode_TextBinaryRowsJSON(t *testing.T) {
	vocabPath := testutil.WriteFile(t, "vocab.txt", "a b c")

	out, err := runCLI(t, "1 0 1\n0 2 1\n", "decode", "--vocab-path", vocabPath, "--mode=binary", "--output-format=json")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	var got [][]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}

	want := [][]string{{"a", "c"}, {"c"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decoded = %v, want %v", got, want)
	}
}

func TestDecode_SafetensorsRoundTrip(t *testing.T) {
	vocabPath := testutil.WriteFile(t, "vocab.txt", "the cat sat")
	arrPath := testutil.TempPath(t, "batch.safetensors")

	if _, err := runCLI(t, "the cat\nsat\n", "encode", "--vocab-path", vocabPath, "--vocab-start=1", "--out", arrPath); err != nil {
		t.Fatalf("encode: %v", err)
	}

	out, err := runCLI(t, "", "decode", "--vocab-path", vocabPath, "--vocab-start=1", "--input", arrPath)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if want := "the cat\nsat\n"; out != want {
		t.Fatalf("decode output = %q, want %q", out, want)
	}
}

func TestDecode_SafetensorsBinaryNamedTensor(t *testing.T) {
	vocabPath := testutil.WriteFile(t, "vocab.txt", "a b")
	arrPath := testutil.TempPath(t, "onehot.safetensors")

	if err := safetensors.WriteFile(arrPath, []safetensors.Tensor{
		{Name: "aaa", Shape: []int64{1}, Data: []int64{0}},
		{Name: "labels", Shape: []int64{2}, Data: []int64{0, 1}},
	}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := runCLI(t, "", "decode", "--vocab-path", vocabPath, "--mode=binary", "--input", arrPath, "--name=labels")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if want := "b\n"; out != want {
		t.Fatalf("decode output = %q, want %q", out, want)
	}
}

func TestDecode_SafetensorsUnknownName(t *testing.T) {
	vocabPath := testutil.WriteFile(t, "vocab.txt", "a b")
	arrPath := testutil.TempPath(t, "batch.safetensors")

	if err := safetensors.WriteFile(arrPath, []safetensors.Tensor{
		{Name: "index", Shape: []int64{1}, Data: []int64{0}},
	}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := runCLI(t, "", "decode", "--vocab-path", vocabPath, "--input", arrPath, "--name=labels")
	if err == nil {
		t.Fatal("expected error for unknown tensor name")
	}

	if !strings.Contains(err.Error(), `"labels"`) || !strings.Contains(err.Error(), "index") {
		t.Fatalf("error %q should name the missing and available tensors", err)
	}
}

func TestDecode_SafetensorsOversizedShape(t *testing.T) {
	vocabPath := testutil.WriteFile(t, "vocab.txt", "a b")

	header := []byte(`{"x":{"dtype":"I64","shape":[2305843009213693952],"data_offsets":[0,0]}}`)
	blob := make([]byte, 8, 8+len(header))
	binary.LittleEndian.PutUint64(blob, uint64(len(header)))
	blob = append(blob, header...)

	arrPath := testutil.TempPath(t, "crafted.safetensors")
	if err := os.WriteFile(arrPath, blob, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := runCLI(t, "", "decode", "--vocab-path", vocabPath, "--input", arrPath); err == nil {
		t.Fatal("expected error for shape larger than tensor data")
	}
}

func TestDecode_MissingInputFile(t *testing.T) {
	vocabPath := testutil.WriteFile(t, "vocab.txt", "a")

	if _, err := runCLI(t, "", "decode", "--vocab-path", vocabPath, "--input", testutil.TempPath(t, "none.txt")); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestDecodeTensor_RejectsRank3(t *testing.T) {
	idx := vocab.New([]string{"a"}, 0)

	cube, err := tensor.New([]int64{0}, []int64{1, 1, 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := decodeTensor(idx, cube, "index"); !errors.Is(err, tensor.ErrRank) {
		t.Fatalf("err = %v, want ErrRank", err)
	}
}
