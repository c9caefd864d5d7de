package dedup

import (
	"bytes"
	"unsafe"

	"github.com/brimdata/blockflow/vector"
	"github.com/kamstrup/intmap"
	"github.com/zeebo/xxh3"
)

// entry is one stored key.  Keys with equal hashes are chained through next.
type entry struct {
	handle Handle
	next   int32
}

const entrySize = uint64(unsafe.Sizeof(entry{}))

type serializedSet struct {
	shape   Shape
	arena   *Arena
	heads   *intmap.Map[uint64, int32]
	entries []entry
	scratch []byte
	hash    func([]byte) uint64
}

func newSerializedSet(shape Shape) *serializedSet {
	return &serializedSet{
		shape: shape,
		arena: NewArena(),
		heads: intmap.New[uint64, int32](1024),
		hash:  xxh3.Hash,
	}
}

func (s *serializedSet) Insert(cols []vector.Any, slot uint32) bool {
	key := s.scratch[:0]
	for _, col := range cols {
		key = vector.AppendKey(key, col, slot)
	}
	s.scratch = key
	hash := s.hash(key)
	head, ok := s.heads.Get(hash)
	if ok {
		for i := head; i >= 0; i = s.entries[i].next {
			if bytes.Equal(s.arena.Bytes(s.entries[i].handle), key) {
				return false
			}
		}
	} else {
		head = -1
	}
	s.entries = append(s.entries, entry{handle: s.arena.Append(key), next: head})
	s.heads.Put(hash, int32(len(s.entries)-1))
	return true
}

func (s *serializedSet) Rows() uint64 {
	return uint64(len(s.entries))
}

func (s *serializedSet) Bytes() uint64 {
	return s.arena.Allocated() + s.Rows()*entrySize
}

func (*serializedSet) Method() Method {
	return Serialized
}

func (s *serializedSet) Shape() Shape {
	return s.shape
}
