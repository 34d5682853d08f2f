package catalog

import (
	"sort"
	"strings"

	"hotel_concierge/internal/domain"
)

// Catalog is the read-only hotel reference set. Safe for concurrent use.
type Catalog struct {
	hotels []domain.Hotel
	byID   map[string]int
}

func New(hotels []domain.Hotel) *Catalog {
	c := &Catalog{hotels: make([]domain.Hotel, len(hotels)), byID: make(map[string]int, len(hotels))}
	copy(c.hotels, hotels)
	for i, h := range c.hotels {
		c.byID[strings.ToLower(h.ID)] = i
	}
	return c
}

// Filter zero values disable the corresponding dimension.
type Filter struct {
	MaxPrice  int
	Location  string
	MinRating float64
	Amenities []string
	Limit     int // <= 0 means no limit
}

func (c *Catalog) Len() int { return len(c.hotels) }

// All returns the hotels in catalog order.
func (c *Catalog) All() []domain.Hotel {
	out := make([]domain.Hotel, len(c.hotels))
	copy(out, c.hotels)
	return out
}

func (c *Catalog) ByID(id string) (domain.Hotel, bool) {
	i, ok := c.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return domain.Hotel{}, false
	}
	return c.hotels[i], true
}

// Top returns the first n hotels in ranking order, no filters applied.
func (c *Catalog) Top(n int) []domain.Hotel {
	return c.Search(Filter{Limit: n})
}

// Search returns hotels matching every supplied filter, best rated first and
// cheapest first among equal ratings.
func (c *Catalog) Search(f Filter) []domain.Hotel {
	loc := strings.ToLower(strings.TrimSpace(f.Location))
	amen := make([]string, 0, len(f.Amenities))
	for _, a := range f.Amenities {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			amen = append(amen, a)
		}
	}

	out := []domain.Hotel{}
	for _, h := range c.hotels {
		if f.MaxPrice > 0 && h.PricePerNight > f.MaxPrice {
			continue
		}
		if loc != "" && !strings.Contains(strings.ToLower(h.Area), loc) {
			continue
		}
		if f.MinRating > 0 && h.Rating < f.MinRating {
			continue
		}
		if !hasAmenities(h, amen) {
			continue
		}
		out = append(out, h)
	}
	sortRanked(out)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// Areas lists distinct lowercase areas in first-seen order.
func (c *Catalog) Areas() []string {
	seen := map[string]struct{}{}
	var out []string
	for _, h := range c.hotels {
		a := strings.ToLower(strings.TrimSpace(h.Area))
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

func sortRanked(hs []domain.Hotel) {
	sort.SliceStable(hs, func(i, j int) bool {
		if hs[i].Rating != hs[j].Rating {
			return hs[i].Rating > hs[j].Rating
		}
		return hs[i].PricePerNight < hs[j].PricePerNight
	})
}

func hasAmenities(h domain.Hotel, want []string) bool {
	for _, w := range want {
		found := false
		for _, tag := range h.Amenities {
			if strings.Contains(strings.ToLower(tag), w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
