package engine

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

//16 bytes
type transEntry struct {
	key   uint64
	score int32
	depth int8
	bound uint8
}

// transTable is directly indexed by the low bits of the key.
// Every write replaces the slot.
type transTable struct {
	megabytes int
	entries   []transEntry
	mask      uint64
}

func newTransTable(megabytes int) *transTable {
	var size = roundPowerOfTwo(1024 * 1024 * megabytes / 16)
	return &transTable{
		megabytes: megabytes,
		entries:   make([]transEntry, size),
		mask:      uint64(size - 1),
	}
}

func (tt *transTable) Size() int {
	return tt.megabytes
}

func (tt *transTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

func (tt *transTable) Read(key uint64) (depth, score, bound int, ok bool) {
	var entry = &tt.entries[key&tt.mask]
	if entry.bound != 0 && entry.key == key {
		depth = int(entry.depth)
		score = int(entry.score)
		bound = int(entry.bound)
		ok = true
	}
	return
}

func (tt *transTable) Update(key uint64, depth, score, bound int) {
	tt.entries[key&tt.mask] = transEntry{
		key:   key,
		score: int32(score),
		depth: int8(depth),
		bound: uint8(bound),
	}
}
