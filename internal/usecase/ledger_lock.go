package usecase

import "sync"

// LedgerLock is shared by the ledger and the catalogs it references. Payment
// appends and catalog deletes hold it from their reference check until the
// store write, so a payment never points at a method or type removed in
// between.
type LedgerLock struct {
	mu sync.Mutex
}

func NewLedgerLock() *LedgerLock {
	return &LedgerLock{}
}

func (l *LedgerLock) hold() func() {
	l.mu.Lock()
	return l.mu.Unlock
}
