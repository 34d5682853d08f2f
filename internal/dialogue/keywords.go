package dialogue

import (
	"strings"
	"unicode"
)

var (
	greetingWords = []string{"hi", "hello", "hey", "namaste", "start", "begin", "restart"}
	listWords     = []string{"show hotels", "list hotels", "hotels in nagpur", "show me hotels", "find hotels", "show all hotels"}
	bookingWords  = []string{"book", "booking", "reserve", "proceed", "i want to book"}
	yesWords      = []string{"yes", "confirm", "ok", "proceed", "book it", "go ahead", "yep", "yeah"}
	noWords       = []string{"no", "cancel", "back", "change", "nope", "decline"}
)

// DefaultGazetteer lists the Nagpur areas recognised in free text.
var DefaultGazetteer = []string{"sitabuldi", "wardha road", "ramdas peth", "central avenue", "sadar", "dharampeth", "gandhibagh"}

// MergeGazetteer appends catalog areas not already covered, keeping base order.
func MergeGazetteer(base []string, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := map[string]struct{}{}
	for _, list := range [][]string{base, extra} {
		for _, a := range list {
			a = strings.ToLower(strings.TrimSpace(a))
			if _, ok := seen[a]; ok || a == "" {
				continue
			}
			seen[a] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

// normalize lowercases msg and reduces it to single-space separated words,
// padded so phrases can be matched on word boundaries.
func normalize(msg string) string {
	words := strings.FieldsFunc(strings.ToLower(msg), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	return " " + strings.Join(words, " ") + " "
}

// hasAny reports whether a normalized message contains any phrase as whole words.
func hasAny(norm string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(norm, " "+p+" ") {
			return true
		}
	}
	return false
}
