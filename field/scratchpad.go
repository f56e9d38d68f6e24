package field

import "sync"

// Scratchpad is a per-field, per-thread register file: a handful of
// general-purpose Elements (r0..r4, matching the register names the
// point-arithmetic and Elligator formulas in spec.md §4.3-4.6 use) plus a
// small slice of extra registers for the Montgomery ladder's working
// state. One goroutine uses a Scratchpad at a time; reuse across calls is
// what keeps the hot path allocation-free.
//
// Scratchpads are pooled per Modulus rather than held in a goroutine-local
// the way the teacher's generated-table caches work, because Go has no
// first-class thread-local storage: sync.Pool already does per-P (and so,
// in practice, close to per-goroutine) caching of exactly this shape, and
// is the idiomatic Go answer to spec.md §9's "Thread-local scratchpads in
// the source rely on a managed runtime's thread-locals" note.
type Scratchpad struct {
	R0, R1, R2, R3, R4 *Element
	Ladder             []*Element // working registers for MontgomeryLadder; sized by caller

	pool *sync.Pool
}

var scratchpadPools sync.Map // *Modulus -> *sync.Pool

func poolFor(m *Modulus) *sync.Pool {
	if p, ok := scratchpadPools.Load(m); ok {
		return p.(*sync.Pool)
	}
	p := &sync.Pool{
		New: func() any {
			return &Scratchpad{
				R0: m.Zero(), R1: m.Zero(), R2: m.Zero(), R3: m.Zero(), R4: m.Zero(),
			}
		},
	}
	actual, _ := scratchpadPools.LoadOrStore(m, p)
	return actual.(*sync.Pool)
}

// AcquireScratchpad draws a Scratchpad for the given field from the pool,
// allocating a fresh one only if the pool is empty. Acquire/Release is a
// scoped-acquisition lifecycle: callers must Release on every exit path,
// success or error -- the idiomatic Go shape for that is
//
//	s := field.AcquireScratchpad(m)
//	defer s.Release()
func AcquireScratchpad(m *Modulus) *Scratchpad {
	pool := poolFor(m)
	s := pool.Get().(*Scratchpad)
	s.pool = pool
	return s
}

// Release returns the Scratchpad to its pool. Per spec.md §4.2's pool
// contract, registers are left exactly as the last caller wrote them --
// Release never clears them, and the next Acquire's caller must treat
// every register as holding arbitrary data until it writes to it.
func (s *Scratchpad) Release() {
	if s.pool != nil {
		s.pool.Put(s)
	}
}
