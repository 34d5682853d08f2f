package dialogue

import (
	"fmt"

	"hotel_concierge/internal/billing"
	"hotel_concierge/internal/domain"
	"hotel_concierge/internal/session"
)

// advance feeds msg to the active booking session. Calling it for a user
// without one is a programming error.
func (r *Router) advance(userID string, st *session.State, msg string, meta domain.Meta) domain.Reply {
	bs := st.Booking
	if bs == nil {
		panic("dialogue: advance called without an active booking session for " + userID)
	}
	switch bs.Step {
	case domain.StepCollectName:
		return r.collectName(bs, msg, meta)
	case domain.StepCollectPhone:
		return r.collectPhone(bs, msg, meta)
	case domain.StepCollectDate:
		return r.collectDate(userID, bs, msg, meta)
	case domain.StepConfirmSummary:
		return r.confirm(st, msg, meta)
	}
	panic(fmt.Sprintf("dialogue: unknown booking step %d", bs.Step))
}

func (r *Router) collectName(bs *domain.BookingSession, msg string, meta domain.Meta) domain.Reply {
	name, ok := ExtractName(msg)
	if !ok {
		meta.Step = bs.Step.String()
		return domain.Reply{Text: namePrompt, Meta: meta}
	}
	bs.Name = name
	bs.Step = domain.StepCollectPhone
	meta.Step = bs.Step.String()
	return domain.Reply{Text: nameThanksText(name), Meta: meta}
}

func (r *Router) collectPhone(bs *domain.BookingSession, msg string, meta domain.Meta) domain.Reply {
	phone, ok := ParsePhone(msg)
	if !ok {
		meta.Step = bs.Step.String()
		return domain.Reply{Text: phonePrompt, Meta: meta}
	}
	bs.Phone = phone
	bs.Step = domain.StepCollectDate
	meta.Step = bs.Step.String()
	return domain.Reply{Text: phoneThanksText, Meta: meta}
}

func (r *Router) collectDate(userID string, bs *domain.BookingSession, msg string, meta domain.Meta) domain.Reply {
	date, ok := ParseCheckinDate(msg, r.now())
	if !ok {
		meta.Step = bs.Step.String()
		return domain.Reply{Text: datePrompt, Meta: meta}
	}
	h, found := r.catalog.ByID(bs.HotelID)
	if !found {
		// sessions are only opened for catalog hotels and the catalog never changes
		panic("dialogue: booking session references unknown hotel " + bs.HotelID)
	}
	bs.CheckinDate = date
	bs.Step = domain.StepConfirmSummary
	bs.Pending = &domain.PendingBooking{
		UserID:      userID,
		Name:        bs.Name,
		Phone:       bs.Phone,
		HotelID:     bs.HotelID,
		CheckinDate: date,
		Nights:      bs.Nights,
		Visitors:    domain.DefaultVisitors,
	}
	summary := billing.Summary(h, billing.NewQuote(h, bs.Nights), billing.SummaryDetails{
		GuestName:   bs.Name,
		CheckinDate: date,
	})
	meta.Step = bs.Step.String()
	return domain.Reply{Text: summary + "\n\n" + confirmPrompt, Meta: meta}
}

// confirm resolves the final yes/no. A message matching both keyword sets, or
// neither, leaves the session where it is.
func (r *Router) confirm(st *session.State, msg string, meta domain.Meta) domain.Reply {
	norm := normalize(msg)
	yes, no := hasAny(norm, yesWords), hasAny(norm, noWords)

	switch {
	case yes && !no:
		pending := *st.Booking.Pending
		st.Booking = nil
		meta.Action = domain.ActionProceedToPayment
		meta.BookingConfirmed = true
		meta.Booking = &pending
		return domain.Reply{Text: confirmedText, Meta: meta}
	case no && !yes:
		st.Booking = nil
		st.Prefs.SelectedHotel = nil
		meta.Action = domain.ActionBookingCancelled
		return domain.Reply{Text: cancelledText, Meta: meta}
	}
	meta.Step = domain.StepConfirmSummary.String()
	return domain.Reply{Text: yesNoPrompt, Meta: meta}
}
