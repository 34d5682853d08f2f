package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"hotel_concierge/internal/domain"
)

//go:embed nagpur.yaml
var defaultCatalog []byte

/********** alias registry **********/

var hotelAliases = map[string][]string{
	"id":        {"id", "hotel_id", "code"},
	"name":      {"name", "hotel_name", "title"},
	"area":      {"area", "location", "locality", "address.area"},
	"price":     {"price_per_night", "price", "rate", "tariff"},
	"rating":    {"rating", "score", "stars"},
	"amenities": {"amenities", "facilities", "features"},
}

type file struct {
	Hotels []map[string]any `yaml:"hotels"`
}

// LoadFile reads a YAML catalog; an empty path selects the bundled Nagpur catalog.
// Rows that cannot be mapped are returned as errors alongside the good ones.
func LoadFile(path string) ([]domain.Hotel, []error, error) {
	b := defaultCatalog
	if path != "" {
		var err error
		if b, err = os.ReadFile(path); err != nil {
			return nil, nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
	}
	return Parse(b)
}

func Parse(b []byte) ([]domain.Hotel, []error, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, nil, fmt.Errorf("decode catalog: %w", err)
	}
	hs, errs := Decode(f.Hotels)
	return hs, errs, nil
}

// Decode maps loosely shaped rows onto hotels. Rows without an explicit id get
// "h<position>", matching the ids guests see in suggestions.
func Decode(rows []map[string]any) ([]domain.Hotel, []error) {
	var out []domain.Hotel
	var errs []error
	seen := map[string]struct{}{}
	for i, row := range rows {
		h := mapHotel(row, i)
		if err := Validate(h); err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		if _, dup := seen[h.ID]; dup {
			errs = append(errs, fmt.Errorf("row %d: duplicate id %s", i+1, h.ID))
			continue
		}
		seen[h.ID] = struct{}{}
		out = append(out, h)
	}
	return out, errs
}

// Validate reports the first problem with a catalog row.
func Validate(h domain.Hotel) error {
	switch {
	case h.ID == "":
		return &domain.ValidationError{Field: "id", Reason: "required"}
	case strings.TrimSpace(h.Name) == "":
		return &domain.ValidationError{Field: "name", Reason: "required"}
	case h.PricePerNight <= 0:
		return &domain.ValidationError{Field: "price_per_night", Reason: "must be positive"}
	case h.Rating < 0 || h.Rating > 5:
		return &domain.ValidationError{Field: "rating", Reason: "must be within 0-5"}
	}
	return nil
}

// normalizeID lowercases a string id and drops leading zeros from the
// number in "h<n>" ids, so "H01" and "h1" name the same hotel.
func normalizeID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	rest, ok := strings.CutPrefix(id, "h")
	if !ok || rest == "" {
		return id
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 || strings.ContainsAny(rest, "+-") {
		return id
	}
	return "h" + strconv.Itoa(n)
}

func mapHotel(row map[string]any, pos int) domain.Hotel {
	h := domain.Hotel{
		Name: firstString(row, "name"),
		Area: firstString(row, "area"),
	}
	switch id := firstValue(row, "id").(type) {
	case string:
		h.ID = normalizeID(id)
	case int:
		h.ID = "h" + strconv.Itoa(id)
	case float64:
		h.ID = "h" + strconv.Itoa(int(id))
	case nil:
		h.ID = "h" + strconv.Itoa(pos+1)
	}
	if f, ok := firstFloat(row, "price"); ok {
		h.PricePerNight = int(f)
	}
	if f, ok := firstFloat(row, "rating"); ok {
		h.Rating = f
	}
	h.Amenities = firstTags(row, "amenities")
	return h
}

/********** tiny helpers **********/

// lookupAny: nested lookup with dot paths.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func firstValue(m map[string]any, key string) any {
	for _, p := range hotelAliases[key] {
		if v := lookupAny(m, p); v != nil {
			return v
		}
	}
	return nil
}

func firstString(m map[string]any, key string) string {
	for _, p := range hotelAliases[key] {
		if s, ok := lookupAny(m, p).(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// firstFloat accepts float64, int or strings like "4,5".
func firstFloat(m map[string]any, key string) (float64, bool) {
	for _, p := range hotelAliases[key] {
		switch v := lookupAny(m, p).(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// firstTags accepts a list or a comma separated string.
func firstTags(m map[string]any, key string) []string {
	for _, p := range hotelAliases[key] {
		switch v := lookupAny(m, p).(type) {
		case string:
			if tags := splitTags(v); len(tags) > 0 {
				return tags
			}
		case []any:
			var out []string
			for _, it := range v {
				if s, ok := it.(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, strings.TrimSpace(s))
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return []string{}
}

func splitTags(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
