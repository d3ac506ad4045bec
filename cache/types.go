package cache

import (
	"io"

	"github.com/shamaton/msgpack/v2"
)

// Value wraps any msgpack-encodable value so it can be kept in a Store.
type Value[T any] struct {
	V T
}

func (v *Value[T]) Serialize(w io.Writer) error {
	return msgpack.MarshalWrite(w, v.V)
}

func (v *Value[T]) Deserialize(r io.Reader) error {
	return msgpack.UnmarshalRead(r, &v.V)
}
