package app

import (
	"encoding/json"
	"regexp"
	"strings"

	"hotel_concierge/internal/domain"
)

var phoneLikeRe = regexp.MustCompile(`\+?\d[\d -]{8,14}\d`)

// MaskPhone keeps the last four digits of a full number; shorter input is fully masked.
func MaskPhone(phone string) string {
	p := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(phone), "+91"))
	if p == "" {
		return "***"
	}
	if len(p) < 10 {
		return strings.Repeat("*", len(p))
	}
	return strings.Repeat("*", len(p)-4) + p[len(p)-4:]
}

// MaskName keeps the first and last letter of each word; words of two letters or less are hidden.
func MaskName(name string) string {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < 2 {
		return "***"
	}
	parts := strings.Fields(name)
	for i, p := range parts {
		r := []rune(p)
		if len(r) <= 2 {
			parts[i] = strings.Repeat("*", len(r))
			continue
		}
		parts[i] = string(r[0]) + strings.Repeat("*", len(r)-2) + string(r[len(r)-1])
	}
	return strings.Join(parts, " ")
}

func maskText(s string) string {
	return phoneLikeRe.ReplaceAllStringFunc(s, func(m string) string {
		digits := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(m)
		if len(digits) < 10 {
			return m
		}
		return MaskPhone(digits)
	})
}

// maskMeta hides the guest fields of a finalized booking carried in turn metadata.
func maskMeta(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return raw
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return raw
	}
	b, ok := m["booking"].(map[string]any)
	if !ok {
		return raw
	}
	for _, k := range []string{"name", "guest_name"} {
		if v, ok := b[k].(string); ok {
			b[k] = MaskName(v)
		}
	}
	if v, ok := b["phone"].(string); ok {
		b["phone"] = MaskPhone(v)
	}
	out, err := json.Marshal(m)
	if err != nil {
		return raw
	}
	return out
}

// MaskUserData returns a copy of d safe to show to anyone holding the user id.
func MaskUserData(d domain.UserData) domain.UserData {
	out := domain.UserData{
		UserID:             d.UserID,
		ConversationsCount: len(d.Conversations),
		BookingsCount:      len(d.Bookings),
		Conversations:      make([]domain.ConversationTurn, len(d.Conversations)),
		Bookings:           make([]domain.Booking, len(d.Bookings)),
	}
	for i, t := range d.Conversations {
		t.Message = maskText(t.Message)
		t.Meta = maskMeta(t.Meta)
		out.Conversations[i] = t
	}
	for i, b := range d.Bookings {
		b.GuestName = MaskName(b.GuestName)
		b.Phone = MaskPhone(b.Phone)
		out.Bookings[i] = b
	}
	return out
}
