package session

import (
	"sync"

	"hotel_concierge/internal/domain"
)

// State is everything the dialogue keeps for one user.
type State struct {
	Prefs   domain.Preferences
	Booking *domain.BookingSession
}

// ApplyFacts merges non-absent facts. Absent facts never clear a field.
func (s *State) ApplyFacts(f domain.Facts) {
	if f.Budget != nil {
		v := *f.Budget
		s.Prefs.Budget = &v
	}
	if f.Nights != nil {
		v := *f.Nights
		s.Prefs.Nights = &v
	}
	if f.Location != "" {
		s.Prefs.Location = f.Location
	}
}

// Reset clears preferences and drops any booking in progress.
func (s *State) Reset() {
	s.Prefs = domain.Preferences{}
	s.Booking = nil
}

// Store keeps per-user dialogue state for the lifetime of the process.
type Store interface {
	// Turn runs fn with exclusive access to userID's state, creating it if needed.
	Turn(userID string, fn func(st *State))
	GetOrCreate(userID string) domain.Preferences
	ApplyFacts(userID string, f domain.Facts)
	Reset(userID string)
	Session(userID string) (domain.BookingSession, bool)
}

type entry struct {
	mu sync.Mutex
	st State
}

// MemoryStore holds one lock per user so turns of different users never wait
// on each other.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]*entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: map[string]*entry{}}
}

func (m *MemoryStore) entry(userID string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.users[userID]
	if !ok {
		e = &entry{}
		m.users[userID] = e
	}
	return e
}

func (m *MemoryStore) Turn(userID string, fn func(st *State)) {
	e := m.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.st)
}

func (m *MemoryStore) GetOrCreate(userID string) domain.Preferences {
	var p domain.Preferences
	m.Turn(userID, func(st *State) { p = clonePrefs(st.Prefs) })
	return p
}

func (m *MemoryStore) ApplyFacts(userID string, f domain.Facts) {
	m.Turn(userID, func(st *State) { st.ApplyFacts(f) })
}

func (m *MemoryStore) Reset(userID string) {
	m.Turn(userID, func(st *State) { st.Reset() })
}

func (m *MemoryStore) Session(userID string) (domain.BookingSession, bool) {
	var (
		bs domain.BookingSession
		ok bool
	)
	m.Turn(userID, func(st *State) {
		if st.Booking != nil {
			bs, ok = *st.Booking, true
			if bs.Pending != nil {
				p := *bs.Pending
				bs.Pending = &p
			}
		}
	})
	return bs, ok
}

// Len reports how many users have state.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// clonePrefs detaches a snapshot from the stored record.
func clonePrefs(p domain.Preferences) domain.Preferences {
	out := domain.Preferences{Location: p.Location}
	if p.Budget != nil {
		v := *p.Budget
		out.Budget = &v
	}
	if p.Nights != nil {
		v := *p.Nights
		out.Nights = &v
	}
	if p.SelectedHotel != nil {
		h := *p.SelectedHotel
		out.SelectedHotel = &h
	}
	return out
}
