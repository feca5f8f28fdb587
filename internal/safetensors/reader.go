// Package safetensors reads and writes integer arrays in the safetensors
// format: an 8-byte little-endian header length, a JSON header, then raw
// little-endian tensor data.
package safetensors

import (
	"fmt"

	"github.com/example/go-vocabindex/internal/tensor"
)

// Tensor holds a single named int64 tensor.
type Tensor struct {
	Name  string
	Shape []int64
	Data  []int64
}

// FromTensor wraps a dense tensor under name for writing.
func FromTensor(name string, t *tensor.Tensor) Tensor {
	return Tensor{Name: name, Shape: t.Shape(), Data: t.RawData()}
}

// Dense converts the loaded tensor into a dense tensor.
func (t *Tensor) Dense() (*tensor.Tensor, error) {
	return tensor.New(t.Data, t.Shape)
}

// LoadFirstTensor reads a safetensors file and returns its first tensor in
// name order.
func LoadFirstTensor(path string) (*Tensor, error) {
	store, err := OpenStore(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return firstTensor(store)
}

func firstTensor(store *Store) (*Tensor, error) {
	names := store.Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("safetensors: no tensors found")
	}

	return store.Tensor(names[0])
}
