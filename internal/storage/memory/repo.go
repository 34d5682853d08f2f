// Package memory is the process-local Repository used when no MySQL DSN is configured.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotel_concierge/internal/adapters/observability"
	"hotel_concierge/internal/domain"
)

type Repo struct {
	mu       sync.RWMutex
	now      func() time.Time
	users    map[string]domain.User // by phone
	turns    []domain.ConversationTurn
	bookings map[string]domain.Booking
	order    []string // booking ids in creation order
	hotels   map[string]domain.Hotel
	hotelIDs []string
}

func New() *Repo {
	return &Repo{
		now:      time.Now,
		users:    map[string]domain.User{},
		bookings: map[string]domain.Booking{},
		hotels:   map[string]domain.Hotel{},
	}
}

func observe(op string, start time.Time) {
	observability.ObserveStore("memory", op, nil, time.Since(start))
}

func (r *Repo) UpsertUser(_ context.Context, name, phone string) (domain.User, error) {
	defer observe("upsert_user", time.Now())
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[phone]
	if !ok {
		u = domain.User{ID: uuid.NewString(), Phone: phone}
	}
	u.Name = name
	r.users[phone] = u
	return u, nil
}

func (r *Repo) SaveConversation(_ context.Context, t domain.ConversationTurn) error {
	defer observe("save_conversation", time.Now())
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = int64(len(r.turns) + 1)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = r.now().UTC()
	}
	t.Meta = append([]byte(nil), t.Meta...)
	r.turns = append(r.turns, t)
	return nil
}

func (r *Repo) ListConversations(_ context.Context, userID string) ([]domain.ConversationTurn, error) {
	defer observe("list_conversations", time.Now())
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.ConversationTurn{}
	for _, t := range r.turns {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *Repo) CreateBooking(_ context.Context, b domain.Booking) (domain.Booking, error) {
	defer observe("create_booking", time.Now())
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.now().UTC()
	}
	if _, dup := r.bookings[b.ID]; !dup {
		r.order = append(r.order, b.ID)
	}
	r.bookings[b.ID] = b
	return b, nil
}

func (r *Repo) GetBooking(_ context.Context, id string) (domain.Booking, error) {
	defer observe("get_booking", time.Now())
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}

func (r *Repo) ListBookings(_ context.Context, userID string) ([]domain.Booking, error) {
	defer observe("list_bookings", time.Now())
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Booking{}
	for _, id := range r.order {
		if b := r.bookings[id]; b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *Repo) UpsertHotel(_ context.Context, h domain.Hotel) error {
	defer observe("upsert_hotel", time.Now())
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hotels[h.ID]; !ok {
		r.hotelIDs = append(r.hotelIDs, h.ID)
	}
	h.Amenities = append([]string(nil), h.Amenities...)
	r.hotels[h.ID] = h
	return nil
}

// ListHotels returns hotels in first-upsert order.
func (r *Repo) ListHotels(_ context.Context) ([]domain.Hotel, error) {
	defer observe("list_hotels", time.Now())
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Hotel, 0, len(r.hotelIDs))
	for _, id := range r.hotelIDs {
		out = append(out, r.hotels[id])
	}
	return out, nil
}

// Users lists known guests sorted by phone; used by tests and diagnostics.
func (r *Repo) Users() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Phone < out[j].Phone })
	return out
}
