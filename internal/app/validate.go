package app

import (
	"strings"
	"time"
	"unicode/utf8"

	"hotel_concierge/internal/domain"
)

const dateLayout = "2006-01-02"

// BookingRequest is a booking as submitted, before validation.
type BookingRequest struct {
	UserID      string `json:"user_id,omitempty"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	HotelID     string `json:"hotel_id"`
	CheckinDate string `json:"checkin_date"`
	Nights      int    `json:"nights"`
	Visitors    int    `json:"visitors"`
}

func invalid(field, reason string) error {
	return &domain.ValidationError{Field: field, Reason: reason}
}

// NormalizePhone drops '+', '-' and spaces; the result must be 10-12 digits.
func NormalizePhone(raw string) (string, error) {
	p := strings.NewReplacer("+", "", "-", "", " ", "").Replace(strings.TrimSpace(raw))
	if p == "" {
		return "", invalid("phone", "is required")
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return "", invalid("phone", "must contain only digits")
		}
	}
	switch {
	case len(p) < 10:
		return "", invalid("phone", "must be at least 10 digits")
	case len(p) > 12:
		return "", invalid("phone", "must be at most 12 digits")
	}
	return p, nil
}

// ValidateBooking returns a normalized copy of req or the first rule it breaks.
func ValidateBooking(req BookingRequest, now time.Time) (BookingRequest, error) {
	out := req
	out.Name = strings.TrimSpace(req.Name)
	switch n := utf8.RuneCountInString(out.Name); {
	case n < 2:
		return req, invalid("name", "must be at least 2 characters")
	case n > 100:
		return req, invalid("name", "cannot exceed 100 characters")
	}

	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return req, err
	}
	out.Phone = phone

	out.HotelID = strings.ToLower(strings.TrimSpace(req.HotelID))
	if out.HotelID == "" {
		return req, invalid("hotel_id", "is required")
	}

	d, err := time.Parse(dateLayout, strings.TrimSpace(req.CheckinDate))
	if err != nil {
		return req, invalid("checkin_date", "must be in YYYY-MM-DD format")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !d.After(today) {
		return req, invalid("checkin_date", "must be in the future")
	}
	out.CheckinDate = d.Format(dateLayout)

	switch {
	case req.Nights < 1:
		return req, invalid("nights", "must be a positive integer")
	case req.Nights > 365:
		return req, invalid("nights", "cannot exceed 365")
	}

	if out.Visitors == 0 {
		out.Visitors = domain.DefaultVisitors
	}
	switch {
	case out.Visitors < 1:
		return req, invalid("visitors", "must be at least 1")
	case out.Visitors > 10:
		return req, invalid("visitors", "cannot exceed 10")
	}
	return out, nil
}
