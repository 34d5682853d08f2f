package domain

// Reply is the envelope returned for every turn.
type Reply struct {
	Text        string         `json:"reply"`
	Suggestions []HotelSummary `json:"suggestions,omitempty"`
	Meta        Meta           `json:"meta"`
}

// Meta carries the machine-readable side of a turn.
type Meta struct {
	Intent           string          `json:"intent,omitempty"`
	Budget           *int            `json:"budget,omitempty"`
	Nights           *int            `json:"nights,omitempty"`
	Location         string          `json:"location,omitempty"`
	SelectedHotel    *HotelSummary   `json:"selected_hotel,omitempty"`
	Hotels           []HotelSummary  `json:"hotels,omitempty"`
	Step             string          `json:"step,omitempty"`
	Action           string          `json:"action,omitempty"`
	BookingConfirmed bool            `json:"booking_confirmed,omitempty"`
	Booking          *PendingBooking `json:"booking,omitempty"`
}

// Actions surfaced to the caller.
const (
	ActionCollectBookingDetails = "collect_booking_details"
	ActionProceedToPayment      = "proceed_to_payment"
	ActionBookingCancelled      = "booking_cancelled"
	ActionBookingFailed         = "booking_failed"
)
