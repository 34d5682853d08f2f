package domain

// Preferences are the search criteria a user has given so far.
// A nil pointer or empty Location means "not known yet".
type Preferences struct {
	Budget        *int
	Nights        *int
	Location      string
	SelectedHotel *Hotel
}

// Empty reports whether no fact has been recorded.
func (p Preferences) Empty() bool {
	return p.Budget == nil && p.Nights == nil && p.Location == "" && p.SelectedHotel == nil
}

// Facts holds whatever one message yielded.
type Facts struct {
	Budget   *int
	Nights   *int
	Location string
}

func (f Facts) Empty() bool { return f.Budget == nil && f.Nights == nil && f.Location == "" }

// Step is the position of a booking session in the slot-filling protocol.
type Step int

const (
	StepCollectName Step = iota
	StepCollectPhone
	StepCollectDate
	StepConfirmSummary
)

func (s Step) String() string {
	switch s {
	case StepCollectName:
		return "collect_name"
	case StepCollectPhone:
		return "collect_phone"
	case StepCollectDate:
		return "collect_date"
	case StepConfirmSummary:
		return "confirm_summary"
	}
	return "unknown"
}

// BookingSession exists only while a booking is being collected.
type BookingSession struct {
	Step        Step
	HotelID     string
	Nights      int
	Name        string
	Phone       string
	CheckinDate string
	Pending     *PendingBooking // set on entering StepConfirmSummary
}
