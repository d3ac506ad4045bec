package cache

import (
	"bytes"
	"sync"
)

type MemoryStore struct {
	mu   sync.RWMutex
	data map[Hash][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[Hash][]byte),
	}
}

func (m *MemoryStore) getValue(h Hash) (bool, []byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[h]
	if !ok {
		return false, nil, nil
	}
	return true, v, nil
}

func (m *MemoryStore) Put(key Hash, item Serde) error {
	var buf bytes.Buffer
	err := item.Serialize(&buf)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = buf.Bytes()
	return nil
}

func (m *MemoryStore) Get(key Hash, into Serde) (bool, error) {
	has, data, err := m.getValue(key)
	if err != nil || !has {
		return false, err
	}
	return true, into.Deserialize(bytes.NewReader(data))
}

// Len is the number of values held.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
