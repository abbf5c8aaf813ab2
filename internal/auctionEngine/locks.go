package auction

import "sync"

// lockTable serializes the read-compare-write sequence per auction id so
// two concurrent bids cannot both pass the floor check against the same
// stale highest bid. Entries live as long as the process; the table is
// bounded by the number of auctions ever touched.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the per-auction mutex and returns its unlock func.
func (t *lockTable) lock(auctionID string) (unlock func()) {
	t.mu.Lock()
	l, ok := t.locks[auctionID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[auctionID] = l
	}
	t.mu.Unlock()

	l.Lock()
	return l.Unlock
}
