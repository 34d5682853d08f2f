package dialogue

import (
	"time"

	"github.com/rs/zerolog/log"

	"hotel_concierge/internal/catalog"
	"hotel_concierge/internal/domain"
	"hotel_concierge/internal/session"
)

// Intents label which branch produced a reply.
const (
	IntentGreeting       = "greeting"
	IntentAskNights      = "ask_nights"
	IntentAskBudget      = "ask_budget"
	IntentHotelSelected  = "hotel_selected"
	IntentHotelNotFound  = "hotel_not_found"
	IntentListHotels     = "list_hotels"
	IntentSuggestions    = "suggestions"
	IntentNoResults      = "no_results"
	IntentBookingSession = "booking_session"
	IntentBookingStarted = "booking_started"
	IntentMissingHotel   = "missing_hotel"
	IntentMissingNights  = "missing_nights"
	IntentOfferHotels    = "offer_hotels"
	IntentFallback       = "fallback"
)

const (
	defaultSearchLimit = 6
	defaultWidenStep   = 1000
)

// Catalog is the read side of the hotel reference set the router needs.
type Catalog interface {
	ByID(id string) (domain.Hotel, bool)
	Search(f catalog.Filter) []domain.Hotel
	Top(n int) []domain.Hotel
}

// Router handles one turn of the conversation.
type Router struct {
	catalog     Catalog
	store       session.Store
	gazetteer   []string
	now         func() time.Time
	searchLimit int
	widenStep   int
}

type Option func(*Router)

func WithClock(now func() time.Time) Option { return func(r *Router) { r.now = now } }

func WithGazetteer(areas []string) Option { return func(r *Router) { r.gazetteer = areas } }

func WithSearchLimit(n int) Option {
	return func(r *Router) {
		if n > 0 {
			r.searchLimit = n
		}
	}
}

func WithWidenStep(n int) Option {
	return func(r *Router) {
		if n > 0 {
			r.widenStep = n
		}
	}
}

func NewRouter(c Catalog, s session.Store, opts ...Option) *Router {
	r := &Router{
		catalog:     c,
		store:       s,
		gazetteer:   DefaultGazetteer,
		now:         time.Now,
		searchLimit: defaultSearchLimit,
		widenStep:   defaultWidenStep,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Handle processes one message. The user's state is locked for the whole turn.
func (r *Router) Handle(userID, msg string) domain.Reply {
	var out domain.Reply
	r.store.Turn(userID, func(st *session.State) {
		out = r.turn(userID, st, msg)
	})
	log.Debug().
		Str("user", userID).
		Str("intent", out.Meta.Intent).
		Str("step", out.Meta.Step).
		Msg("dialogue_turn")
	return out
}

func (r *Router) turn(userID string, st *session.State, msg string) domain.Reply {
	norm := normalize(msg)

	if hasAny(norm, greetingWords) {
		st.Reset()
		return domain.Reply{Text: welcomeText, Meta: domain.Meta{Intent: IntentGreeting}}
	}

	facts := r.extract(msg)
	st.ApplyFacts(facts)
	meta := domain.Meta{Budget: facts.Budget, Nights: facts.Nights, Location: facts.Location}
	prefs := &st.Prefs

	if facts.Budget != nil && prefs.Nights == nil {
		meta.Intent = IntentAskNights
		return domain.Reply{Text: budgetNotedText(*facts.Budget), Meta: meta}
	}
	if facts.Nights != nil && prefs.Budget == nil {
		meta.Intent = IntentAskBudget
		return domain.Reply{Text: nightsNotedText(*facts.Nights), Meta: meta}
	}

	if id, ok := ParseHotelID(msg); ok && st.Booking == nil {
		return r.selectHotel(st, id, meta)
	}

	if hasAny(norm, listWords) {
		hs := domain.Summaries(r.catalog.Top(r.searchLimit))
		meta.Intent = IntentListHotels
		return domain.Reply{Text: listText, Suggestions: hs, Meta: meta}
	}

	if prefs.Budget != nil && prefs.Nights != nil && prefs.SelectedHotel == nil {
		return r.suggest(st, meta)
	}

	if st.Booking != nil {
		meta.Intent = IntentBookingSession
		return r.advance(userID, st, msg, meta)
	}

	if hasAny(norm, bookingWords) {
		return r.openBooking(st, meta)
	}

	if prefs.Budget != nil && prefs.Nights != nil {
		meta.Intent = IntentOfferHotels
		return domain.Reply{Text: offerText(*prefs.Budget, *prefs.Nights), Meta: meta}
	}

	meta.Intent = IntentFallback
	return domain.Reply{Text: fallbackText, Meta: meta}
}

// extract runs every preference extractor; location only when the message
// carried neither a budget nor a night count.
func (r *Router) extract(msg string) domain.Facts {
	var f domain.Facts
	if b, ok := ParseBudget(msg); ok {
		f.Budget = &b
	}
	if n, ok := ParseNights(msg); ok {
		f.Nights = &n
	}
	if f.Budget == nil && f.Nights == nil {
		if loc, ok := ParseLocation(msg, r.gazetteer); ok {
			f.Location = loc
		}
	}
	return f
}

func (r *Router) selectHotel(st *session.State, id string, meta domain.Meta) domain.Reply {
	h, ok := r.catalog.ByID(id)
	if !ok {
		meta.Intent = IntentHotelNotFound
		return domain.Reply{Text: hotelMissingText, Meta: meta}
	}
	st.Prefs.SelectedHotel = &h
	sum := h.Summary()
	meta.Intent = IntentHotelSelected
	meta.SelectedHotel = &sum
	return domain.Reply{Text: hotelDetailText(h), Suggestions: []domain.HotelSummary{sum}, Meta: meta}
}

func (r *Router) suggest(st *session.State, meta domain.Meta) domain.Reply {
	budget, nights := *st.Prefs.Budget, *st.Prefs.Nights
	hs := r.catalog.Search(catalog.Filter{
		MaxPrice: budget,
		Location: st.Prefs.Location,
		Limit:    r.searchLimit,
	})
	if len(hs) == 0 {
		meta.Intent = IntentNoResults
		return domain.Reply{Text: noResultsText(budget, budget+r.widenStep), Meta: meta}
	}
	sums := domain.Summaries(hs)
	meta.Intent = IntentSuggestions
	meta.Hotels = sums
	return domain.Reply{Text: foundText(len(hs), nights, budget), Suggestions: sums, Meta: meta}
}

func (r *Router) openBooking(st *session.State, meta domain.Meta) domain.Reply {
	if st.Prefs.SelectedHotel == nil {
		meta.Intent = IntentMissingHotel
		return domain.Reply{Text: selectFirstText, Meta: meta}
	}
	if st.Prefs.Nights == nil {
		meta.Intent = IntentMissingNights
		return domain.Reply{Text: askNightsOnly, Meta: meta}
	}
	st.Booking = &domain.BookingSession{
		Step:    domain.StepCollectName,
		HotelID: st.Prefs.SelectedHotel.ID,
		Nights:  *st.Prefs.Nights,
	}
	meta.Intent = IntentBookingStarted
	meta.Action = domain.ActionCollectBookingDetails
	meta.Step = domain.StepCollectName.String()
	return domain.Reply{Text: startBookingText, Meta: meta}
}
