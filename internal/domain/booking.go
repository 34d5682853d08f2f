package domain

import (
	"encoding/json"
	"time"
)

const DefaultVisitors = 1

// PendingBooking is what the dialogue hands over once the guest says yes.
type PendingBooking struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	HotelID     string `json:"hotel_id"`
	CheckinDate string `json:"checkin_date"`
	Nights      int    `json:"nights"`
	Visitors    int    `json:"visitors"`
}

// Booking is a persisted reservation. UserID is the conversation owner for chat
// bookings and equals GuestID for direct ones.
type Booking struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	GuestID     string    `json:"guest_id"`
	HotelID     string    `json:"hotel_id"`
	HotelName   string    `json:"hotel_name"`
	GuestName   string    `json:"guest_name"`
	Phone       string    `json:"phone"`
	CheckinDate string    `json:"checkin_date"`
	Nights      int       `json:"nights"`
	Visitors    int       `json:"visitors"`
	Subtotal    float64   `json:"subtotal"`
	Tax         float64   `json:"tax"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is a guest identified by phone number.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ConversationTurn is one recorded utterance.
type ConversationTurn struct {
	ID        int64           `json:"id"`
	UserID    string          `json:"user_id"`
	Role      string          `json:"role"`
	Message   string          `json:"message"`
	Meta      json.RawMessage `json:"meta,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
