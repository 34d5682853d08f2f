package billing

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"hotel_concierge/internal/domain"
)

// GSTRate is the flat tax applied to every stay.
const GSTRate = 0.18

// Quote is the price breakdown of a stay.
type Quote struct {
	PricePerNight int
	Nights        int
	Subtotal      float64
	Tax           float64
	Total         float64
}

// NewQuote prices a stay; tax is rounded to the paisa.
func NewQuote(h domain.Hotel, nights int) Quote {
	subtotal := float64(h.PricePerNight * nights)
	tax := math.Round(subtotal*GSTRate*100) / 100
	return Quote{
		PricePerNight: h.PricePerNight,
		Nights:        nights,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
	}
}

var printer = message.NewPrinter(language.English)

// Rupees renders an amount as ₹12,272.00.
func Rupees(v float64) string { return printer.Sprintf("₹%.2f", v) }

// SummaryDetails are the optional guest lines of a summary.
type SummaryDetails struct {
	GuestName   string
	CheckinDate string
}

// Summary renders the breakdown shown before the guest confirms.
func Summary(h domain.Hotel, q Quote, d SummaryDetails) string {
	var b strings.Builder
	b.WriteString("📋 **BOOKING SUMMARY**\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "🏨 Hotel Name: %s\n", h.Name)
	fmt.Fprintf(&b, "📍 Location: %s\n", h.Area)
	fmt.Fprintf(&b, "⭐ Rating: %.1f/5.0\n", h.Rating)
	if d.GuestName != "" {
		fmt.Fprintf(&b, "👤 Guest Name: %s\n", d.GuestName)
	}
	if d.CheckinDate != "" {
		fmt.Fprintf(&b, "📅 Check-in Date: %s\n", d.CheckinDate)
	}
	b.WriteString("\n💰 Pricing Breakdown:\n")
	fmt.Fprintf(&b, "  • Price per night: %s\n", Rupees(float64(q.PricePerNight)))
	fmt.Fprintf(&b, "  • Number of nights: %d\n", q.Nights)
	fmt.Fprintf(&b, "  • Subtotal (Before Taxes): %s\n", Rupees(q.Subtotal))
	b.WriteString("\n📊 Taxes & Total:\n")
	fmt.Fprintf(&b, "  • GST (18%%): %s\n", Rupees(q.Tax))
	b.WriteString("\n💳 Final Amount:\n")
	fmt.Fprintf(&b, "  ✅ TOTAL AMOUNT DUE: %s\n", Rupees(q.Total))
	b.WriteString(rule)
	return b.String()
}

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
