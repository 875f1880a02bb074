package form

import "sync"

// Snapshot is a State tagged with the number of events applied to reach
// it. Versions only grow, so a reader can tell a late delivery from a newer
// one.
type Snapshot struct {
	Version uint64
	State   State
}

// Store owns the current State of one form. Dispatch is the only way to
// change it; every change is published to subscribers as a full snapshot.
type Store struct {
	ctrl Controller

	mu      sync.RWMutex
	state   State
	version uint64
	subs    map[int]chan Snapshot
	nextID  int
	closed  bool
}

func NewStore(ctrl Controller) *Store {
	return &Store{
		ctrl: ctrl,
		subs: make(map[int]chan Snapshot),
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Snapshot returns the current State with its version.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{Version: s.version, State: s.state}
}

// Dispatch applies ev and returns the resulting State.
func (s *Store) Dispatch(ev Event) State {
	return s.Commit(ev).State
}

// Commit applies ev and returns the resulting Snapshot. Every call bumps
// the version, even when ev leaves the State unchanged.
func (s *Store) Commit(ev Event) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.ctrl.Apply(s.state, ev)
	s.version++
	snap := s.snapshot()
	if !s.closed {
		for _, ch := range s.subs {
			offer(ch, snap)
		}
	}
	return snap
}

// Subscribe returns a channel of snapshots. The channel first receives the
// current State. When the reader falls behind, older snapshots are dropped
// so the newest one is always delivered. cancel is safe to call twice.
func (s *Store) Subscribe(buffer int) (<-chan Snapshot, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Snapshot, buffer)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- s.snapshot()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
	return ch, cancel
}

// Close ends every subscription. Later Dispatch calls still update the
// State but publish nothing.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// offer delivers v without blocking, evicting the oldest pending value when
// ch is full. Callers hold the store lock, so nothing else sends on ch.
func offer(ch chan Snapshot, v Snapshot) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
