package dialogue

import (
	"fmt"
	"strings"

	"hotel_concierge/internal/domain"
)

const (
	welcomeText = "🏨 Welcome to Nagpur Hotel Booking Assistant!\n\n" +
		"To help you find the perfect hotel, please tell me:\n" +
		"1️⃣ Your budget per night (e.g., '₹3000')\n" +
		"2️⃣ Number of nights (e.g., '3 nights')\n" +
		"3️⃣ Preferred location (optional, e.g., 'Sitabuldi')"

	fallbackText = "I'm here to help you book a hotel! Tell me your budget (e.g., '₹3000') and " +
		"number of nights (e.g., '3 nights'), or search by saying 'show hotels'."

	listText         = "📋 Here are popular hotels in Nagpur. Click on a hotel or reply with the hotel id (e.g., 'h1') to view details or book."
	hotelMissingText = "❌ I couldn't find that hotel id. Please use the id shown in the list (e.g., 'h1', 'h2')."
	selectFirstText  = "📋 Please first select a hotel from the list before booking."
	askNightsOnly    = "How many nights would you like to stay?"
	startBookingText = "📝 To complete your booking, I'll need some details.\n\nFirst, please provide your full name."

	namePrompt    = "Please provide a valid name (at least 2 characters)."
	phonePrompt   = "Please provide a valid 10-digit phone number."
	datePrompt    = "Please provide a valid date in YYYY-MM-DD format (e.g., 2025-12-25)."
	confirmPrompt = "🔐 **Confirm booking? Please reply 'yes' to confirm or 'no' to cancel.**"
	yesNoPrompt   = "Please confirm by typing 'yes' to proceed with the booking, or 'no' to cancel."

	confirmedText = "✅ Perfect! Your booking is confirmed. Redirecting to payment. " +
		"Your booking will be completed once payment is processed."
	cancelledText = "❌ Booking cancelled. No charges will be made. " +
		"Let me help you search for different hotels. What's your budget per night?"
)

func budgetNotedText(budget int) string {
	return fmt.Sprintf("✅ Budget ₹%d/night noted.\n\nHow many nights would you like to stay? (e.g., '3 nights')", budget)
}

func nightsNotedText(nights int) string {
	return fmt.Sprintf("✅ %d nights noted.\n\nWhat's your budget per night? (e.g., '₹2500')", nights)
}

func hotelDetailText(h domain.Hotel) string {
	amen := "N/A"
	if len(h.Amenities) > 0 {
		amen = strings.Join(h.Amenities, ", ")
	}
	return fmt.Sprintf("📍 *%s*\n\n⭐ %.1f | 💰 ₹%d/night | 📍 %s\n\nAmenities: %s\n\nWould you like to book this hotel?",
		h.Name, h.Rating, h.PricePerNight, h.Area, amen)
}

func foundText(n, nights, budget int) string {
	return fmt.Sprintf("🎉 Found %d hotels for %d nights within ₹%d/night. Here are the top options:\n\n"+
		"Select a hotel to proceed or ask for details.", n, nights, budget)
}

func noResultsText(budget, widened int) string {
	return fmt.Sprintf("😔 Sorry, no hotels found under ₹%d/night. Would you like me to show options up to ₹%d?", budget, widened)
}

func offerText(budget, nights int) string {
	return fmt.Sprintf("You're looking for a hotel under ₹%d/night for %d nights. Would you like me to show you the available hotels?",
		budget, nights)
}

func nameThanksText(name string) string {
	return fmt.Sprintf("✅ Thank you, %s. Now please provide your phone number (10 digits, e.g., 9876543210).", name)
}

const phoneThanksText = "✅ Thank you. Now please provide your check-in date in YYYY-MM-DD format (e.g., 2025-12-25)."
