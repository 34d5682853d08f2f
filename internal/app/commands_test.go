package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hotel_concierge/internal/app"
	"hotel_concierge/internal/catalog"
	"hotel_concierge/internal/domain"
	"hotel_concierge/internal/storage/memory"
)

func newBookingService(t *testing.T) (*app.BookingService, *app.QueryService, *memory.Repo, *fakeCache) {
	t.Helper()
	hs, _, err := catalog.LoadFile("")
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	cat := catalog.New(hs)
	repo := memory.New()
	cache := &fakeCache{}
	return app.NewBookingService(repo, cat, cache, clock), app.NewQueryService(repo, cat, cache, time.Minute), repo, cache
}

func TestBook_DirectBooking(t *testing.T) {
	svc, _, repo, _ := newBookingService(t)
	ctx := context.Background()

	rc, err := svc.Book(ctx, validRequest())
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	b := rc.Booking
	// h3 is 4500/night
	if b.Subtotal != 9000 || b.Tax != 1620 || b.TotalPrice != 10620 {
		t.Fatalf("bad pricing: %+v", b)
	}
	if b.UserID != b.GuestID || b.Visitors != 1 || b.Phone != "919876543210" {
		t.Fatalf("unexpected booking: %+v", b)
	}
	if !strings.Contains(rc.Bill, "Booking ID: "+b.ID[:8]) || !strings.Contains(rc.Bill, "₹10,620.00") {
		t.Fatalf("unexpected bill:\n%s", rc.Bill)
	}

	turns, _ := repo.ListConversations(ctx, b.UserID)
	if len(turns) != 2 || !strings.HasPrefix(turns[1].Message, "Booking confirmed!") {
		t.Fatalf("direct booking should be logged: %+v", turns)
	}

	// rebooking with the same phone reuses the guest
	again, err := svc.Book(ctx, validRequest())
	if err != nil {
		t.Fatalf("book again: %v", err)
	}
	if again.Booking.GuestID != b.GuestID {
		t.Fatal("guest should be reused for the same phone")
	}
}

func TestBook_Rejections(t *testing.T) {
	svc, _, repo, _ := newBookingService(t)
	ctx := context.Background()

	req := validRequest()
	req.HotelID = "h99"
	if _, err := svc.Book(ctx, req); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	req = validRequest()
	req.Nights = 0
	if _, err := svc.Book(ctx, req); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("want ErrInvalid, got %v", err)
	}
	if len(repo.Users()) != 0 {
		t.Fatal("rejected bookings must not create guests")
	}
}

func TestGetBooking_CacheMissThenHit(t *testing.T) {
	svc, q, repo, cache := newBookingService(t)
	ctx := context.Background()
	rc, err := svc.Book(ctx, validRequest())
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	got, err := q.GetBooking(ctx, rc.Booking.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Bill != rc.Bill {
		t.Fatalf("re-rendered bill differs:\n%s\nvs\n%s", got.Bill, rc.Bill)
	}
	if _, ok := cache.store["booking:"+rc.Booking.ID]; !ok {
		t.Fatal("booking should be cached")
	}

	// overwrite in the repo; the cached copy still wins
	changed := rc.Booking
	changed.GuestName = "SHOULD NOT SEE THIS"
	_, _ = repo.CreateBooking(ctx, changed)
	again, _ := q.GetBooking(ctx, rc.Booking.ID)
	if again.Booking.GuestName != rc.Booking.GuestName {
		t.Fatalf("expected cached guest name, got %s", again.Booking.GuestName)
	}

	if _, err := q.GetBooking(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCatalogSync(t *testing.T) {
	repo := memory.New()
	svc := app.NewCatalogSyncService(repo)
	ctx := context.Background()

	if err := svc.SyncHotel(ctx, domain.Hotel{ID: "h1", Name: "Radisson", PricePerNight: 5200, Rating: 4.6}); err != nil {
		t.Fatalf("sync: %v", err)
	}
	err := svc.SyncHotel(ctx, domain.Hotel{ID: "h2", Name: "Broken", PricePerNight: 0})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}

	cat, err := app.LoadCatalog(ctx, repo, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("repository hotels should win, got %d", cat.Len())
	}

	fallback, err := app.LoadCatalog(ctx, memory.New(), "")
	if err != nil || fallback.Len() != 30 {
		t.Fatalf("empty repository should fall back to the bundled catalog: %v %d", err, fallback.Len())
	}
}
