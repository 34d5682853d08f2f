package dialogue_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel_concierge/internal/dialogue"
)

func TestParseBudget(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"₹700", 700, true},
		{"₹400", 0, false},
		{"₹150000", 0, false},
		{"3000", 3000, true},
		{"my budget is ₹3,000 per night", 3000, true},
		{"rs 2500", 2500, true},
		{"100000", 100000, true},
		{"500", 500, true},
		{"3000 for 2 nights", 3000, true},
		{"2 nights", 0, false},
		{"730 days", 0, false},
		{"9876543210", 0, false},
		{"98765 43210", 0, false},
		{"98765-43210", 0, false},
		{"+91 98765 43210", 0, false},
		{"3000, call me on 98765 43210", 3000, true},
		{"2025-12-25", 0, false},
		{"checking in 25/12/2025", 0, false},
		{"h12", 0, false},
		{"hello", 0, false},
	}
	for _, tc := range cases {
		got, ok := dialogue.ParseBudget(tc.in)
		assert.Equal(t, tc.ok, ok, "ok for %q", tc.in)
		assert.Equal(t, tc.want, got, "value for %q", tc.in)
	}
}

func TestParseNights(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"3 nights", 3, true},
		{"1 night", 1, true},
		{"5 Days please", 5, true},
		{"2nights", 2, true},
		{"400 nights", 0, false},
		{"0 nights", 0, false},
		{"365 days", 365, true},
		{"a few nights", 0, false},
	}
	for _, tc := range cases {
		got, ok := dialogue.ParseNights(tc.in)
		assert.Equal(t, tc.ok, ok, "ok for %q", tc.in)
		assert.Equal(t, tc.want, got, "value for %q", tc.in)
	}
}

func TestParseLocation_FirstMatchWins(t *testing.T) {
	loc, ok := dialogue.ParseLocation("Somewhere near Sadar or Sitabuldi", dialogue.DefaultGazetteer)
	assert.True(t, ok)
	assert.Equal(t, "sitabuldi", loc, "gazetteer order decides, not message order")

	_, ok = dialogue.ParseLocation("near the airport", dialogue.DefaultGazetteer)
	assert.False(t, ok)

	loc, ok = dialogue.ParseLocation("MANISH NAGAR", dialogue.MergeGazetteer(dialogue.DefaultGazetteer, []string{"Manish Nagar", "Sadar"}))
	assert.True(t, ok)
	assert.Equal(t, "manish nagar", loc)
}

func TestParsePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"9876543210", "9876543210", true},
		{"+91 9876543210", "9876543210", true},
		{"+91-9876543210", "9876543210", true},
		{"919876543210", "9876543210", true},
		{"call me on 9876543210 please", "9876543210", true},
		{"987654321", "", false},
		{"12345678901", "", false},
		{"John Doe", "", false},
	}
	for _, tc := range cases {
		got, ok := dialogue.ParsePhone(tc.in)
		assert.Equal(t, tc.ok, ok, "ok for %q", tc.in)
		assert.Equal(t, tc.want, got, "value for %q", tc.in)
	}
}

func TestParseCheckinDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)

	d, ok := dialogue.ParseCheckinDate("2025-12-25", now)
	assert.True(t, ok)
	assert.Equal(t, "2025-12-25", d)

	d, ok = dialogue.ParseCheckinDate("check-in on 2025-06-02 please", now)
	assert.True(t, ok)
	assert.Equal(t, "2025-06-02", d)

	for _, in := range []string{"2025-06-01", "2024-12-25", "2025-02-30", "25-12-2025", "ref 12025-12-250", "tomorrow"} {
		_, ok := dialogue.ParseCheckinDate(in, now)
		assert.False(t, ok, "expected %q to be rejected", in)
	}
}

func TestExtractName(t *testing.T) {
	name, ok := dialogue.ExtractName("  John Doe ")
	assert.True(t, ok)
	assert.Equal(t, "John Doe", name)

	name, ok = dialogue.ExtractName("Priya (Sharma) 42")
	assert.True(t, ok)
	assert.Equal(t, "Priya Sharma", name)

	for _, in := range []string{"", "J", "12345", "+91-()", strings.Repeat("a", 101)} {
		_, ok := dialogue.ExtractName(in)
		assert.False(t, ok, "expected %q to be rejected", in)
	}
}

func TestParseHotelID(t *testing.T) {
	id, ok := dialogue.ParseHotelID("tell me about H7")
	assert.True(t, ok)
	assert.Equal(t, "h7", id)

	id, ok = dialogue.ParseHotelID("h01")
	assert.True(t, ok)
	assert.Equal(t, "h1", id)

	for _, in := range []string{"h123", "hotel", "ah1", "h"} {
		_, ok := dialogue.ParseHotelID(in)
		assert.False(t, ok, "expected %q to be rejected", in)
	}
}
