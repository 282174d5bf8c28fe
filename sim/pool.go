package sim

import "github.com/kamstrup/intmap"

// BlockPool issues and reclaims opaque block identities. The engine acquires
// four per spawned piece and releases every identity returned by ClearRows and
// Reset; whatever visual resource backs an identity is owned by the
// implementation, never by the engine.
type BlockPool interface {
	Acquire() BlockID
	Release(id BlockID)
}

// HandlePool is the default BlockPool. Released identities are recycled, and
// the outstanding set is tracked so releasing an unknown or already-released
// handle is a no-op instead of corrupting the free list.
type HandlePool struct {
	next        BlockID
	free        []BlockID
	live        *intmap.Map[BlockID, struct{}]
	outstanding int
}

// NewHandlePool creates an empty pool. Identities start at 1; zero is the
// grid's empty-cell sentinel and is never issued.
func NewHandlePool() *HandlePool {
	return &HandlePool{
		live: intmap.New[BlockID, struct{}](256),
	}
}

// Acquire returns a fresh or recycled identity.
func (p *HandlePool) Acquire() BlockID {
	var id BlockID
	if n := len(p.free); n > 0 {
		id = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		p.next++
		id = p.next
	}
	p.live.Put(id, struct{}{})
	p.outstanding++
	return id
}

// Release returns an identity to the pool. Unknown and double releases are
// ignored.
func (p *HandlePool) Release(id BlockID) {
	if _, ok := p.live.Get(id); !ok {
		return
	}
	p.live.Del(id)
	p.outstanding--
	p.free = append(p.free, id)
}

// Outstanding returns how many identities are acquired but not yet released.
func (p *HandlePool) Outstanding() int { return p.outstanding }
