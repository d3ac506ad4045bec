package cache

import (
	"io"

	"github.com/dgryski/go-farm"
)

// Store holds serialized values addressed by a Hash.
type Store interface {
	Put(key Hash, item Serde) error
	Get(key Hash, into Serde) (bool, error)
}

type Serde interface {
	Serialize(w io.Writer) error
	Deserialize(r io.Reader) error
}

type directStore interface {
	getValue(h Hash) (bool, []byte, error)
}

type Hash uint64

// KeyOf hashes a canonical rendering of the value being cached.
func KeyOf(canonical string) Hash {
	return Hash(farm.Hash64([]byte(canonical)))
}
