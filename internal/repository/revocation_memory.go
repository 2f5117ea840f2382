package repository

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocationLedger keeps revoked tokens in process memory. It backs
// tests and single-node deployments without Redis.
type MemoryRevocationLedger struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocationLedger() *MemoryRevocationLedger {
	return &MemoryRevocationLedger{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// SetClock overrides the time source. Test helper.
func (l *MemoryRevocationLedger) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

func (l *MemoryRevocationLedger) Revoke(_ context.Context, token string, retention time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[token] = l.now().Add(retention)
	return nil
}

func (l *MemoryRevocationLedger) IsRevoked(_ context.Context, token string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	expiry, ok := l.entries[token]
	if !ok {
		return false, nil
	}
	if l.now().After(expiry) {
		delete(l.entries, token)
		return false, nil
	}
	return true, nil
}
