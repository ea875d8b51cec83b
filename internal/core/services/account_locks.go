package services

import (
	"slices"
	"sync"
)

// accountLocks serializes engine operations per account. An entry lives only
// while some operation holds or waits on it, so the table never outgrows the
// number of in-flight operations.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*accountLock
}

type accountLock struct {
	sync.Mutex
	refs int
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*accountLock)}
}

// lock acquires the locks of every distinct account ID in sorted order, so
// two operations over the same pair can never deadlock. The returned func
// releases them.
func (l *accountLocks) lock(accountIDs ...string) (unlock func()) {
	ids := slices.Clone(accountIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	held := make([]*accountLock, len(ids))
	l.mu.Lock()
	for i, id := range ids {
		m, ok := l.locks[id]
		if !ok {
			m = &accountLock{}
			l.locks[id] = m
		}
		m.refs++
		held[i] = m
	}
	l.mu.Unlock()

	for _, m := range held {
		m.Lock()
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}

		l.mu.Lock()
		defer l.mu.Unlock()
		for i, id := range ids {
			held[i].refs--
			if held[i].refs == 0 {
				delete(l.locks, id)
			}
		}
	}
}
