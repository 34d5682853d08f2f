package domain

// Hotel is an immutable catalog row.
type Hotel struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Area          string   `json:"area" yaml:"area"`
	PricePerNight int      `json:"price_per_night" yaml:"price_per_night"`
	Rating        float64  `json:"rating" yaml:"rating"`
	Amenities     []string `json:"amenities" yaml:"amenities"`
}

// HotelSummary is the shape a hotel takes in a reply's suggestion list.
type HotelSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PricePerNight int     `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	Area          string  `json:"area"`
}

func (h Hotel) Summary() HotelSummary {
	return HotelSummary{ID: h.ID, Name: h.Name, PricePerNight: h.PricePerNight, Rating: h.Rating, Area: h.Area}
}

func Summaries(hs []Hotel) []HotelSummary {
	out := make([]HotelSummary, 0, len(hs))
	for _, h := range hs {
		out = append(out, h.Summary())
	}
	return out
}
