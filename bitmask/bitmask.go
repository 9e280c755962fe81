package bitmask

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// InlineBits is the number of bits a Bitmask holds before it needs heap
// storage. The top bit of the inline word is reserved as the
// representation discriminant.
const InlineBits = bits.UintSize - 1

const wordBits = 64

// inlineMask covers the usable bits of the inline word.
const inlineMask = uint64(1)<<InlineBits - 1

// Bitmask is a set of non-negative bit indices.
//
// While heap is nil the set lives in inline; once heap is allocated it
// holds every bit and inline is unused.
type Bitmask struct {
	inline uint64
	heap   *bitset.BitSet
}

// New returns an empty inline Bitmask.
func New() *Bitmask {
	return &Bitmask{}
}

// Init resets m to the empty inline representation, dropping any heap
// storage.
func (m *Bitmask) Init() {
	m.inline = 0
	m.heap = nil
}

// IsInline reports whether m still uses the single-word representation.
func (m *Bitmask) IsInline() bool {
	return m.heap == nil
}

func checkBit(bit int) {
	if bit < 0 {
		panic("bitmask: negative bit index " + strconv.Itoa(bit))
	}
}

// Get reports whether bit is set.
func (m *Bitmask) Get(bit int) bool {
	checkBit(bit)
	if m.heap == nil {
		if bit >= InlineBits {
			return false
		}
		return m.inline&(1<<uint(bit)) != 0
	}
	return m.heap.Test(uint(bit))
}

// Set sets or clears bit.
func (m *Bitmask) Set(bit int, value bool) {
	checkBit(bit)
	if m.heap == nil {
		if bit < InlineBits {
			if value {
				m.inline |= 1 << uint(bit)
			} else {
				m.inline &^= 1 << uint(bit)
			}
			return
		}
		if !value {
			return
		}
		m.migrate(uint(bit) + 1)
	}
	m.heap.SetTo(uint(bit), value)
}

// SetRange sets or clears every bit in [0, n).
func (m *Bitmask) SetRange(n int, value bool) {
	checkBit(n)
	if n == 0 {
		return
	}
	if m.heap == nil {
		if n <= InlineBits {
			word := uint64(1)<<uint(n) - 1
			if value {
				m.inline |= word
			} else {
				m.inline &^= word
			}
			return
		}
		if !value {
			m.inline = 0
			return
		}
		m.migrate(uint(n))
	}

	if value && m.heap.Len() < uint(n) {
		m.heap.Set(uint(n) - 1)
	}
	words := m.heap.Words()
	full := n / wordBits
	for i := 0; i < full && i < len(words); i++ {
		if value {
			words[i] = ^uint64(0)
		} else {
			words[i] = 0
		}
	}
	if rem := n % wordBits; rem != 0 && full < len(words) {
		word := uint64(1)<<uint(rem) - 1
		if value {
			words[full] |= word
		} else {
			words[full] &^= word
		}
	}
}

// ClearAll clears every bit. A heap-backed mask keeps its storage so that
// masks reused in hot loops do not reallocate.
func (m *Bitmask) ClearAll() {
	if m.heap == nil {
		m.inline = 0
		return
	}
	m.heap.ClearAll()
}

// Union sets in m every bit set in src.
func (m *Bitmask) Union(src *Bitmask) {
	if src.heap == nil {
		if m.heap == nil {
			m.inline |= src.inline
			return
		}
		m.heap.Words()[0] |= src.inline
		return
	}
	if m.heap == nil {
		m.migrate(src.heap.Len())
	}
	m.heap.InPlaceUnion(src.heap)
}

// Xor flips in m every bit set in src.
func (m *Bitmask) Xor(src *Bitmask) {
	if src.heap == nil {
		if m.heap == nil {
			m.inline ^= src.inline
			return
		}
		m.heap.Words()[0] ^= src.inline
		return
	}
	if m.heap == nil {
		m.migrate(src.heap.Len())
	}
	m.heap.InPlaceSymmetricDifference(src.heap)
}

// Foreach calls fn for every set bit in ascending order, stopping early if
// fn returns false. The mask must not be modified during iteration.
func (m *Bitmask) Foreach(fn func(bit int) bool) {
	if m.heap == nil {
		word := m.inline
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			if !fn(bit) {
				return
			}
			word &^= 1 << uint(bit)
		}
		return
	}
	for i, ok := m.heap.NextSet(0); ok; i, ok = m.heap.NextSet(i + 1) {
		if !fn(int(i)) {
			return
		}
	}
}

// PopCount returns the number of set bits.
func (m *Bitmask) PopCount() int {
	if m.heap == nil {
		return bits.OnesCount64(m.inline)
	}
	return int(m.heap.Count())
}

// Equal reports whether m and o hold the same bits, regardless of
// representation.
func (m *Bitmask) Equal(o *Bitmask) bool {
	a, b := m.words(), o.words()
	if len(a) < len(b) {
		a, b = b, a
	}
	for i, w := range a {
		var v uint64
		if i < len(b) {
			v = b[i]
		}
		if w != v {
			return false
		}
	}
	return true
}

// Destroy releases heap storage. m must not be used afterwards.
func (m *Bitmask) Destroy() {
	m.heap = nil
	m.inline = 0
}

// String formats the set bits as "{1, 5, 70}".
func (m *Bitmask) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	m.Foreach(func(bit int) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(strconv.Itoa(bit))
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}

// migrate moves the inline bits to heap storage large enough for n bits.
func (m *Bitmask) migrate(n uint) {
	if n < wordBits {
		n = wordBits
	}
	words := make([]uint64, (n+wordBits-1)/wordBits)
	words[0] = m.inline & inlineMask
	m.heap = bitset.From(words)
	m.inline = 0
}

func (m *Bitmask) words() []uint64 {
	if m.heap == nil {
		return []uint64{m.inline}
	}
	return m.heap.Words()
}
