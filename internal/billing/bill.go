package billing

import (
	"fmt"
	"strings"

	"hotel_concierge/internal/domain"
)

const billWidth = 40

// Bill renders the plain-text confirmation bill for a persisted booking.
func Bill(h domain.Hotel, q Quote, guestName, bookingID string) string {
	short := bookingID
	if len(short) > 8 {
		short = short[:8]
	}
	var b strings.Builder
	top := "╔" + strings.Repeat("═", billWidth) + "╗\n"
	mid := "╠" + strings.Repeat("═", billWidth) + "╣\n"
	bot := "╚" + strings.Repeat("═", billWidth) + "╝\n"

	b.WriteString(top)
	line(&b, centered("BOOKING CONFIRMATION BILL"))
	b.WriteString(mid)
	line(&b, "Hotel: "+h.Name)
	line(&b, "Location: "+h.Area)
	line(&b, fmt.Sprintf("Rating: %.1f ⭐", h.Rating))
	line(&b, "Guest: "+guestName)
	line(&b, "Booking ID: "+short)
	b.WriteString(mid)
	line(&b, "Price/Night: "+Rupees(float64(q.PricePerNight)))
	line(&b, fmt.Sprintf("Number of Nights: %d", q.Nights))
	line(&b, "Subtotal: "+Rupees(q.Subtotal))
	line(&b, "Tax (18% GST): "+Rupees(q.Tax))
	b.WriteString(mid)
	line(&b, "TOTAL AMOUNT: "+Rupees(q.Total))
	b.WriteString(bot)
	return b.String()
}

// line pads (or truncates) s to the box width, counting runes.
func line(b *strings.Builder, s string) {
	r := []rune(" " + s)
	if len(r) > billWidth {
		r = r[:billWidth]
	}
	b.WriteString("║")
	b.WriteString(string(r))
	b.WriteString(strings.Repeat(" ", billWidth-len(r)))
	b.WriteString("║\n")
}

func centered(s string) string {
	pad := (billWidth - 1 - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
