package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel_concierge/internal/catalog"
	"hotel_concierge/internal/domain"
	"hotel_concierge/internal/session"
)

func TestAdvance_WithoutSessionPanics(t *testing.T) {
	r := NewRouter(catalog.New(nil), session.NewMemoryStore())
	assert.Panics(t, func() {
		r.advance("u1", &session.State{}, "yes", domain.Meta{})
	})
}

func TestKeywords_MatchWholeWords(t *testing.T) {
	assert.False(t, hasAny(normalize("I know this hotel"), noWords))
	assert.False(t, hasAny(normalize("which one"), greetingWords))
	assert.False(t, hasAny(normalize("notebook"), bookingWords))
	assert.True(t, hasAny(normalize("Please, BOOK IT!"), yesWords))
	assert.True(t, hasAny(normalize("nope."), noWords))
	assert.True(t, hasAny(normalize("Show me hotels"), listWords))
}
