package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hotel_concierge/internal/domain"
	"hotel_concierge/internal/storage/memory"
)

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// fakeCache stores JSON so reads never alias the caller's values.
type fakeCache struct {
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(v, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

// failingRepo refuses writes; reads fall through to the embedded memory repo.
type failingRepo struct {
	*memory.Repo
}

var errDown = errors.New("database down")

func (failingRepo) SaveConversation(context.Context, domain.ConversationTurn) error {
	return errDown
}
func (failingRepo) CreateBooking(context.Context, domain.Booking) (domain.Booking, error) {
	return domain.Booking{}, errDown
}

// bookingDownRepo keeps the conversation log but cannot store bookings.
type bookingDownRepo struct {
	*memory.Repo
}

func (bookingDownRepo) CreateBooking(context.Context, domain.Booking) (domain.Booking, error) {
	return domain.Booking{}, errDown
}
