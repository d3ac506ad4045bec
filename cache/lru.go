package cache

import (
	"bytes"
	"container/list"
)

// LRUCache is a Store wrapper that keeps recently read values in memory
// using LRU eviction.
type LRUCache struct {
	underlying Store
	cache      map[Hash]*list.Element
	evictList  *list.List
	maxSize    int
	hits       int
	misses     int
}

type cacheEntry struct {
	hash  Hash
	value []byte
}

// NewLRUCache creates a new LRU-cached Store wrapper
// maxSize is the maximum number of entries to cache (0 or negative means the default)
func NewLRUCache(underlying Store, maxSize int) *LRUCache {
	if maxSize <= 0 {
		maxSize = 64
	}
	return &LRUCache{
		underlying: underlying,
		cache:      make(map[Hash]*list.Element),
		evictList:  list.New(),
		maxSize:    maxSize,
	}
}

// Put stores an item in the underlying Store and drops any stale cached copy
func (l *LRUCache) Put(key Hash, item Serde) error {
	if elem, ok := l.cache[key]; ok {
		l.evictList.Remove(elem)
		delete(l.cache, key)
	}
	return l.underlying.Put(key, item)
}

func (l *LRUCache) Get(key Hash, into Serde) (bool, error) {
	has, data, err := l.getValue(key)
	if err != nil || !has {
		return false, err
	}
	return true, into.Deserialize(bytes.NewReader(data))
}

// getValue implements directStore - this is where caching happens
func (l *LRUCache) getValue(h Hash) (bool, []byte, error) {
	if elem, ok := l.cache[h]; ok {
		l.hits++
		l.evictList.MoveToFront(elem)
		return true, elem.Value.(*cacheEntry).value, nil
	}
	l.misses++

	underlying, ok := l.underlying.(directStore)
	if !ok {
		return false, nil, nil
	}
	has, data, err := underlying.getValue(h)
	if err != nil || !has {
		return false, nil, err
	}
	l.addToCache(h, data)
	return true, data, nil
}

func (l *LRUCache) addToCache(hash Hash, value []byte) {
	if elem, ok := l.cache[hash]; ok {
		l.evictList.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = value
		return
	}
	elem := l.evictList.PushFront(&cacheEntry{hash: hash, value: value})
	l.cache[hash] = elem

	if l.evictList.Len() > l.maxSize {
		l.evictOldest()
	}
}

// evictOldest removes the least recently used entry from cache
func (l *LRUCache) evictOldest() {
	elem := l.evictList.Back()
	if elem != nil {
		l.evictList.Remove(elem)
		delete(l.cache, elem.Value.(*cacheEntry).hash)
	}
}

// CacheStats returns cache statistics for monitoring
type CacheStats struct {
	Size    int
	MaxSize int
	Stored  int // -1 when the underlying Store cannot report its size
	Hits    int
	Misses  int
}

func (l *LRUCache) Stats() CacheStats {
	stored := -1
	if s, ok := l.underlying.(interface{ Len() int }); ok {
		stored = s.Len()
	}
	return CacheStats{
		Size:    len(l.cache),
		MaxSize: l.maxSize,
		Stored:  stored,
		Hits:    l.hits,
		Misses:  l.misses,
	}
}
