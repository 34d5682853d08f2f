package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_concierge/internal/adapters/observability"
	"hotel_concierge/internal/billing"
	"hotel_concierge/internal/catalog"
	"hotel_concierge/internal/domain"
)

const (
	SourceChat   = "chat"
	SourceDirect = "direct"
)

// HotelLookup is the read side of the catalog the booking path needs.
type HotelLookup interface {
	ByID(id string) (domain.Hotel, bool)
}

// Receipt is a persisted booking plus its rendered bill.
type Receipt struct {
	Booking domain.Booking `json:"booking"`
	Bill    string         `json:"bill"`
}

type BookingService struct {
	repo   domain.Repository
	hotels HotelLookup
	cache  domain.Cache
	now    func() time.Time
}

func NewBookingService(r domain.Repository, h HotelLookup, cache domain.Cache, now func() time.Time) *BookingService {
	if now == nil {
		now = time.Now
	}
	return &BookingService{repo: r, hotels: h, cache: cache, now: now}
}

// Book validates and persists a direct booking, recording it in the user's conversation log.
func (s *BookingService) Book(ctx context.Context, req BookingRequest) (Receipt, error) {
	rc, err := s.create(ctx, req, SourceDirect)
	if err != nil {
		return Receipt{}, err
	}
	b := rc.Booking
	s.record(ctx, b.UserID, domain.RoleUser,
		fmt.Sprintf("Book %s check-in %s nights %d visitors %d", b.HotelName, b.CheckinDate, b.Nights, b.Visitors),
		map[string]any{"booking_id": b.ID, "action": "booking_submitted"})
	s.record(ctx, b.UserID, domain.RoleBot, "Booking confirmed!\n\n"+rc.Bill,
		map[string]any{"booking": b, "action": "booking_confirmed"})
	return rc, nil
}

// Materialize persists a booking the dialogue has confirmed.
func (s *BookingService) Materialize(ctx context.Context, p domain.PendingBooking) (Receipt, error) {
	return s.create(ctx, BookingRequest{
		UserID:      p.UserID,
		Name:        p.Name,
		Phone:       p.Phone,
		HotelID:     p.HotelID,
		CheckinDate: p.CheckinDate,
		Nights:      p.Nights,
		Visitors:    p.Visitors,
	}, SourceChat)
}

func (s *BookingService) create(ctx context.Context, req BookingRequest, source string) (Receipt, error) {
	req, err := ValidateBooking(req, s.now())
	if err != nil {
		observability.ObserveBooking(source, "rejected")
		return Receipt{}, err
	}
	h, ok := s.hotels.ByID(req.HotelID)
	if !ok {
		observability.ObserveBooking(source, "rejected")
		return Receipt{}, fmt.Errorf("hotel %s: %w", req.HotelID, domain.ErrNotFound)
	}

	guest, err := s.repo.UpsertUser(ctx, req.Name, req.Phone)
	if err != nil {
		return Receipt{}, fmt.Errorf("upsert guest: %w", err)
	}
	owner := req.UserID
	if owner == "" {
		owner = guest.ID
	}

	q := billing.NewQuote(h, req.Nights)
	b, err := s.repo.CreateBooking(ctx, domain.Booking{
		UserID:      owner,
		GuestID:     guest.ID,
		HotelID:     h.ID,
		HotelName:   h.Name,
		GuestName:   req.Name,
		Phone:       req.Phone,
		CheckinDate: req.CheckinDate,
		Nights:      req.Nights,
		Visitors:    req.Visitors,
		Subtotal:    q.Subtotal,
		Tax:         q.Tax,
		TotalPrice:  q.Total,
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("create booking: %w", err)
	}

	invalidateUserData(ctx, s.cache, owner)
	observability.ObserveBooking(source, "confirmed")
	log.Info().Str("booking", b.ID).Str("hotel", h.ID).Str("source", source).Msg("booking created")
	return Receipt{Booking: b, Bill: billing.Bill(h, q, req.Name, b.ID)}, nil
}

func (s *BookingService) record(ctx context.Context, userID, role, msg string, meta any) {
	saveTurn(ctx, s.repo, userID, role, msg, meta)
	invalidateUserData(ctx, s.cache, userID)
}

// saveTurn is best effort; a lost log line must not fail the user's request.
func saveTurn(ctx context.Context, repo domain.Repository, userID, role, msg string, meta any) {
	var raw json.RawMessage
	if meta != nil {
		b, err := json.Marshal(meta)
		if err == nil {
			raw = b
		}
	}
	t := domain.ConversationTurn{UserID: userID, Role: role, Message: msg, Meta: raw}
	if err := repo.SaveConversation(ctx, t); err != nil {
		log.Warn().Err(err).Str("user", userID).Str("role", role).Msg("conversation not saved")
	}
}

func invalidateUserData(ctx context.Context, cache domain.Cache, userID string) {
	if cache == nil {
		return
	}
	_ = cache.Del(ctx, userDataKey(userID))
}

// CatalogSyncService writes catalog rows into the repository.
type CatalogSyncService struct {
	repo domain.Repository
}

func NewCatalogSyncService(r domain.Repository) *CatalogSyncService {
	return &CatalogSyncService{repo: r}
}

// SyncHotel validates and upserts one hotel. Invalid rows return a *domain.ValidationError.
func (s *CatalogSyncService) SyncHotel(ctx context.Context, h domain.Hotel) error {
	if err := catalog.Validate(h); err != nil {
		return fmt.Errorf("hotel %q: %w", h.ID, err)
	}
	if err := s.repo.UpsertHotel(ctx, h); err != nil {
		return fmt.Errorf("upsert hotel %s: %w", h.ID, err)
	}
	return nil
}

// LoadCatalog prefers hotels stored in the repository and falls back to the catalog file
// (the embedded Nagpur catalog when path is empty).
func LoadCatalog(ctx context.Context, r domain.Repository, path string) (*catalog.Catalog, error) {
	stored, err := r.ListHotels(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("hotels table unavailable, using catalog file")
	}
	if len(stored) > 0 {
		log.Info().Int("hotels", len(stored)).Msg("catalog loaded from repository")
		return catalog.New(stored), nil
	}
	hotels, rowErrs, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	for _, e := range rowErrs {
		log.Warn().Err(e).Msg("catalog row skipped")
	}
	log.Info().Int("hotels", len(hotels)).Str("path", path).Msg("catalog loaded from file")
	return catalog.New(hotels), nil
}
