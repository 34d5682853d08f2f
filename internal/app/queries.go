package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"hotel_concierge/internal/billing"
	"hotel_concierge/internal/domain"
)

func bookingKey(id string) string      { return "booking:" + id }
func userDataKey(userID string) string { return "userdata:" + userID }

type QueryService struct {
	repo     domain.Repository
	hotels   HotelLookup
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.Repository, h HotelLookup, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, hotels: h, cache: c, cacheTTL: ttl}
}

// GetBooking returns a stored booking with its bill re-rendered from the catalog.
func (s *QueryService) GetBooking(ctx context.Context, id string) (Receipt, error) {
	key := bookingKey(id)
	var rc Receipt
	if ok, _ := s.cache.Get(ctx, key, &rc); ok {
		return rc, nil
	}
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return Receipt{}, fmt.Errorf("booking %s: %w", id, err)
	}
	rc = Receipt{Booking: b}
	if h, ok := s.hotels.ByID(b.HotelID); ok {
		rc.Bill = billing.Bill(h, billing.NewQuote(h, b.Nights), b.GuestName, b.ID)
	}
	_ = s.cache.Set(ctx, key, rc, int(s.cacheTTL.Seconds()))
	return rc, nil
}

// UserData returns the user's conversations and bookings with guest details masked.
func (s *QueryService) UserData(ctx context.Context, userID string) (domain.UserData, error) {
	key := userDataKey(userID)
	var out domain.UserData
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	var turns []domain.ConversationTurn
	var bookings []domain.Booking
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		turns, err = s.repo.ListConversations(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.repo.ListBookings(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.UserData{}, err
	}

	out = MaskUserData(domain.UserData{UserID: userID, Conversations: turns, Bookings: bookings})
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out, nil
}
