package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hotel_concierge/internal/adapters/observability"
	"hotel_concierge/internal/domain"
)

// Dialogue produces the assistant's reply to one user message.
type Dialogue interface {
	Handle(userID, msg string) domain.Reply
}

// ChatResult is the reply envelope plus what the transport needs to keep the conversation going.
type ChatResult struct {
	UserID string `json:"user_id"`
	domain.Reply
	BookingID string `json:"booking_id,omitempty"`
	Bill      string `json:"bill,omitempty"`
}

const bookingFailedText = "Sorry, we could not save your booking. Please try again."

type botMeta struct {
	domain.Meta
	BookingID string `json:"booking_id,omitempty"`
}

type ChatService struct {
	dialogue Dialogue
	repo     domain.Repository
	bookings *BookingService
	cache    domain.Cache
}

func NewChatService(d Dialogue, r domain.Repository, b *BookingService, cache domain.Cache) *ChatService {
	return &ChatService{dialogue: d, repo: r, bookings: b, cache: cache}
}

// Chat runs one turn for userID, generating an id when it is empty. Both sides of the
// exchange are recorded; a confirmed booking is persisted before returning.
func (s *ChatService) Chat(ctx context.Context, userID, message string) (ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatResult{}, invalid("message", "must not be empty")
	}
	if userID == "" {
		userID = uuid.NewString()
	}

	saveTurn(ctx, s.repo, userID, domain.RoleUser, message, nil)
	reply := s.dialogue.Handle(userID, message)
	observability.ObserveTurn(reply.Meta.Intent)

	out := ChatResult{UserID: userID, Reply: reply}
	switch {
	case reply.Meta.BookingConfirmed && reply.Meta.Booking != nil:
		rc, err := s.bookings.Materialize(ctx, *reply.Meta.Booking)
		if err != nil {
			log.Error().Err(err).Str("user", userID).Msg("confirmed booking not persisted")
			failed := reply.Meta
			failed.BookingConfirmed = false
			failed.Action = domain.ActionBookingFailed
			saveTurn(ctx, s.repo, userID, domain.RoleBot, bookingFailedText, botMeta{Meta: failed})
			invalidateUserData(ctx, s.cache, userID)
			return ChatResult{}, fmt.Errorf("persist booking: %w", err)
		}
		out.BookingID = rc.Booking.ID
		out.Bill = rc.Bill
	case reply.Meta.Action == domain.ActionBookingCancelled:
		observability.ObserveBooking(SourceChat, "cancelled")
	}

	saveTurn(ctx, s.repo, userID, domain.RoleBot, reply.Text, botMeta{Meta: reply.Meta, BookingID: out.BookingID})
	invalidateUserData(ctx, s.cache, userID)
	return out, nil
}
