package snake

import "sync/atomic"

// directionSlot is a single-slot, last-write-wins mailbox for the pending
// direction. The committed direction lives in the same word (high byte) so
// the reversal guard and the pending write are one atomic step with respect
// to a concurrent commit.
type directionSlot struct {
	word atomic.Uint32
}

func pack(committed, pending Direction) uint32 {
	return uint32(committed)<<8 | uint32(pending)
}

func unpack(w uint32) (committed, pending Direction) {
	return Direction(w >> 8), Direction(w & 0xff)
}

// reset sets both committed and pending to d.
func (s *directionSlot) reset(d Direction) {
	s.word.Store(pack(d, d))
}

// load returns the committed and pending directions.
func (s *directionSlot) load() (committed, pending Direction) {
	return unpack(s.word.Load())
}

// request overwrites the pending direction unless d reverses the committed
// one. Returns false when the request was ignored.
func (s *directionSlot) request(d Direction) bool {
	for {
		old := s.word.Load()
		committed, _ := unpack(old)
		if d == committed.Opposite() {
			return false
		}
		if s.word.CompareAndSwap(old, pack(committed, d)) {
			return true
		}
	}
}

// commit promotes the pending direction to committed and returns it.
func (s *directionSlot) commit() Direction {
	for {
		old := s.word.Load()
		_, pending := unpack(old)
		if s.word.CompareAndSwap(old, pack(pending, pending)) {
			return pending
		}
	}
}
