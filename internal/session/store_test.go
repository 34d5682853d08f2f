package session_test

import (
	"fmt"
	"sync"
	"testing"

	"hotel_concierge/internal/domain"
	"hotel_concierge/internal/session"
)

func pint(i int) *int { return &i }

func TestApplyFacts_MergesWithoutClearing(t *testing.T) {
	s := session.NewMemoryStore()
	if p := s.GetOrCreate("u1"); !p.Empty() {
		t.Fatalf("new record should be empty: %+v", p)
	}

	s.ApplyFacts("u1", domain.Facts{Budget: pint(3000)})
	s.ApplyFacts("u1", domain.Facts{Nights: pint(2)})
	s.ApplyFacts("u1", domain.Facts{Location: "sadar"})
	s.ApplyFacts("u1", domain.Facts{}) // nothing extracted

	p := s.GetOrCreate("u1")
	if p.Budget == nil || *p.Budget != 3000 || p.Nights == nil || *p.Nights != 2 || p.Location != "sadar" {
		t.Fatalf("unexpected prefs: %+v", p)
	}

	s.ApplyFacts("u1", domain.Facts{Budget: pint(4500)})
	if p := s.GetOrCreate("u1"); *p.Budget != 4500 || *p.Nights != 2 {
		t.Fatalf("budget should be overwritten only: %+v", p)
	}
}

func TestSnapshotsAreDetached(t *testing.T) {
	s := session.NewMemoryStore()
	s.ApplyFacts("u1", domain.Facts{Budget: pint(3000)})
	p := s.GetOrCreate("u1")
	*p.Budget = 1

	if got := s.GetOrCreate("u1"); *got.Budget != 3000 {
		t.Fatalf("snapshot mutation leaked into store: %d", *got.Budget)
	}
}

func TestReset_DropsSession(t *testing.T) {
	s := session.NewMemoryStore()
	s.Turn("u1", func(st *session.State) {
		st.ApplyFacts(domain.Facts{Budget: pint(3000), Nights: pint(2)})
		st.Prefs.SelectedHotel = &domain.Hotel{ID: "h1"}
		st.Booking = &domain.BookingSession{Step: domain.StepCollectPhone, HotelID: "h1", Nights: 2}
	})
	if _, ok := s.Session("u1"); !ok {
		t.Fatalf("expected active session")
	}

	s.Reset("u1")
	if _, ok := s.Session("u1"); ok {
		t.Fatalf("session should be gone after reset")
	}
	if p := s.GetOrCreate("u1"); !p.Empty() {
		t.Fatalf("prefs should be empty after reset: %+v", p)
	}
}

func TestTurn_SerializesPerUser(t *testing.T) {
	s := session.NewMemoryStore()
	const n = 200
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("u%d", i%4)
			s.Turn(user, func(st *session.State) {
				cur := 0
				if st.Prefs.Nights != nil {
					cur = *st.Prefs.Nights
				}
				// read-modify-write must not interleave with another turn of the same user
				st.Prefs.Nights = pint(cur + 1)
			})
		}(i)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 4; i++ {
		total += *s.GetOrCreate(fmt.Sprintf("u%d", i)).Nights
	}
	if total != n {
		t.Fatalf("lost updates: got %d want %d", total, n)
	}
	if s.Len() != 4 {
		t.Fatalf("expected 4 users, got %d", s.Len())
	}
}
