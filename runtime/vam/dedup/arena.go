package dedup

const (
	arenaInitialChunk = 4096
	arenaMaxChunk     = 1 << 20
)

// Handle locates a byte string stored in an Arena.
type Handle struct {
	Chunk uint32
	Off   uint32
	Len   uint32
}

// Arena is an append-only store for variable-length keys.  Chunks are never
// reallocated once handed out so a Handle stays valid for the life of the
// arena.  There is no per-key release; the arena is dropped as a whole.
type Arena struct {
	chunks    [][]byte
	used      uint64
	allocated uint64
}

func NewArena() *Arena {
	return &Arena{}
}

// Append copies b into the arena and returns its handle.
func (a *Arena) Append(b []byte) Handle {
	n := len(a.chunks)
	if n == 0 || cap(a.chunks[n-1])-len(a.chunks[n-1]) < len(b) {
		a.grow(len(b))
		n = len(a.chunks)
	}
	chunk := a.chunks[n-1]
	off := len(chunk)
	a.chunks[n-1] = append(chunk, b...)
	a.used += uint64(len(b))
	return Handle{Chunk: uint32(n - 1), Off: uint32(off), Len: uint32(len(b))}
}

func (a *Arena) grow(need int) {
	size := arenaInitialChunk
	if n := len(a.chunks); n > 0 {
		size = min(2*cap(a.chunks[n-1]), arenaMaxChunk)
	}
	size = max(size, need)
	a.chunks = append(a.chunks, make([]byte, 0, size))
	a.allocated += uint64(size)
}

// Bytes returns the bytes for h.  The result aliases arena memory and must
// not be modified.
func (a *Arena) Bytes(h Handle) []byte {
	return a.chunks[h.Chunk][h.Off : h.Off+h.Len : h.Off+h.Len]
}

// Used returns the number of key bytes stored in the arena.
func (a *Arena) Used() uint64 {
	return a.used
}

// Allocated returns the capacity of all chunks, including unused tails.
func (a *Arena) Allocated() uint64 {
	return a.allocated
}
