package dialogue

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinBudget = 500
	MaxBudget = 100000
	MinNights = 1
	MaxNights = 365

	minNameLen = 2
	maxNameLen = 100
)

var (
	digitRunRe  = regexp.MustCompile(`\d+`)
	dateLikeRe  = regexp.MustCompile(`\d{1,4}[-/.]\d{1,2}[-/.]\d{1,4}`)
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	spacedNumRe = regexp.MustCompile(`\+?\d(?:[\s-]?\d){9,}`)
	nightsRe    = regexp.MustCompile(`(?i)(\d+)\s*(?:nights?|days?)`)
	phoneRe     = regexp.MustCompile(`(?:^|\D)(?:\+?91[\s-]?)?(\d{10})(?:\D|$)`)
	hotelIDRe   = regexp.MustCompile(`(?i)\bh(\d{1,2})\b`)
	nameStripRe = regexp.MustCompile(`[\d\-+()]+`)
)

// ParseBudget finds a per-night budget such as "₹3,000", "rs 2500" or "3000".
// Digits that belong to a date, a night count or a phone number (ten or more
// digits, possibly split by spaces or hyphens) are not budget candidates, nor
// are runs longer than six digits. The first candidate decides.
func ParseBudget(msg string) (int, bool) {
	s := strings.ReplaceAll(msg, ",", "")
	s = dateLikeRe.ReplaceAllString(s, " ")
	s = nightsRe.ReplaceAllString(s, " ")
	s = spacedNumRe.ReplaceAllString(s, " ")
	for _, run := range digitRunRe.FindAllString(s, -1) {
		if len(run) < 3 || len(run) > 6 {
			continue
		}
		n, err := strconv.Atoi(run)
		if err != nil || n < MinBudget || n > MaxBudget {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// ParseNights finds "<n> night(s)" or "<n> day(s)".
func ParseNights(msg string) (int, bool) {
	m := nightsRe.FindStringSubmatch(msg)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < MinNights || n > MaxNights {
		return 0, false
	}
	return n, true
}

// ParseLocation returns the first gazetteer entry contained in msg.
func ParseLocation(msg string, gazetteer []string) (string, bool) {
	lower := strings.ToLower(msg)
	for _, area := range gazetteer {
		if area != "" && strings.Contains(lower, area) {
			return area, true
		}
	}
	return "", false
}

// ParsePhone accepts exactly ten digits, optionally prefixed with +91.
func ParsePhone(msg string) (string, bool) {
	m := phoneRe.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseCheckinDate accepts YYYY-MM-DD strictly after now's calendar date.
func ParseCheckinDate(msg string, now time.Time) (string, bool) {
	m := isoDateRe.FindString(msg)
	if m == "" {
		return "", false
	}
	d, err := time.Parse("2006-01-02", m)
	if err != nil {
		return "", false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !d.After(today) {
		return "", false
	}
	return m, true
}

// ExtractName treats the whole message, minus digits and "-+()", as a name.
func ExtractName(msg string) (string, bool) {
	name := strings.TrimSpace(nameStripRe.ReplaceAllString(msg, ""))
	name = strings.Join(strings.Fields(name), " ")
	if n := utf8.RuneCountInString(name); n < minNameLen || n > maxNameLen {
		return "", false
	}
	return name, true
}

// ParseHotelID finds a catalog reference like "h7" and normalizes it.
func ParseHotelID(msg string) (string, bool) {
	m := hotelIDRe.FindStringSubmatch(msg)
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	return "h" + strconv.Itoa(n), true
}
