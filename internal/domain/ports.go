package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid input")
)

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Reason) }

func (e *ValidationError) Unwrap() error { return ErrInvalid }

type Repository interface {
	// Write paths
	UpsertUser(ctx context.Context, name, phone string) (User, error)
	SaveConversation(ctx context.Context, t ConversationTurn) error
	CreateBooking(ctx context.Context, b Booking) (Booking, error)
	UpsertHotel(ctx context.Context, h Hotel) error

	// Read paths
	GetBooking(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context, userID string) ([]Booking, error)
	ListConversations(ctx context.Context, userID string) ([]ConversationTurn, error)
	ListHotels(ctx context.Context) ([]Hotel, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// UserData is everything recorded for one user id.
type UserData struct {
	UserID             string             `json:"user_id"`
	ConversationsCount int                `json:"conversations_count"`
	BookingsCount      int                `json:"bookings_count"`
	Conversations      []ConversationTurn `json:"conversations"`
	Bookings           []Booking          `json:"bookings"`
}
