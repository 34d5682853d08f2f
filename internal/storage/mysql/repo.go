package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel_concierge/internal/adapters/observability"
	"hotel_concierge/internal/domain"
)

const dateLayout = "2006-01-02"

func valJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

type Repo struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repo { return &Repo{db: db, now: time.Now} }

// observe is deferred with a pointer so it sees the named result at return.
func observe(op string, start time.Time, err *error) {
	observability.ObserveStore("mysql", op, *err, time.Since(start))
}

func (r *Repo) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

func (r *Repo) UpsertUser(ctx context.Context, name, phone string) (u domain.User, err error) {
	defer observe("upsert_user", time.Now(), &err)
	if _, err = r.db.ExecContext(ctx, upsertUserSQL, uuid.NewString(), name, phone); err != nil {
		return domain.User{}, fmt.Errorf("upsert user: %w", err)
	}
	if err = r.db.QueryRowContext(ctx, getUserByPhoneSQL, phone).Scan(&u.ID, &u.Name, &u.Phone); err != nil {
		return domain.User{}, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}

func (r *Repo) SaveConversation(ctx context.Context, t domain.ConversationTurn) (err error) {
	defer observe("save_conversation", time.Now(), &err)
	at := t.CreatedAt
	if at.IsZero() {
		at = r.now().UTC()
	}
	_, err = r.db.ExecContext(ctx, insertConversationSQL, t.UserID, t.Role, t.Message, valJSON(t.Meta), at)
	return err
}

func (r *Repo) ListConversations(ctx context.Context, userID string) (out []domain.ConversationTurn, err error) {
	defer observe("list_conversations", time.Now(), &err)
	rows, err := r.db.QueryContext(ctx, listConversationsSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out = []domain.ConversationTurn{}
	for rows.Next() {
		var t domain.ConversationTurn
		var meta sql.RawBytes
		if err = rows.Scan(&t.ID, &t.UserID, &t.Role, &t.Message, &meta, &t.CreatedAt); err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			t.Meta = append(json.RawMessage(nil), meta...)
		}
		out = append(out, t)
	}
	err = rows.Err()
	return out, err
}

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) (err error) {
	defer observe("upsert_hotel", time.Now(), &err)
	amenities := h.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	amen, _ := json.Marshal(amenities)
	_, err = r.db.ExecContext(ctx, upsertHotelSQL,
		h.ID, h.Name, h.Area, h.PricePerNight, h.Rating, string(amen), position(h.ID))
	return err
}

// position orders "h<n>" ids numerically; anything else sorts first by id.
func position(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(id), "h"))
	if err != nil {
		return 0
	}
	return n
}

func (r *Repo) ListHotels(ctx context.Context) (out []domain.Hotel, err error) {
	defer observe("list_hotels", time.Now(), &err)
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var h domain.Hotel
		var amen []byte
		if err = rows.Scan(&h.ID, &h.Name, &h.Area, &h.PricePerNight, &h.Rating, &amen); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(amen, &h.Amenities)
		out = append(out, h)
	}
	err = rows.Err()
	return out, err
}

func (r *Repo) CreateBooking(ctx context.Context, b domain.Booking) (_ domain.Booking, err error) {
	defer observe("create_booking", time.Now(), &err)
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.now().UTC().Truncate(time.Millisecond)
	}
	_, err = r.db.ExecContext(ctx, insertBookingSQL,
		b.ID, b.UserID, b.GuestID, b.HotelID, b.HotelName, b.GuestName, b.Phone, b.CheckinDate,
		b.Nights, b.Visitors, b.Subtotal, b.Tax, b.TotalPrice, b.CreatedAt)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	return b, nil
}

type scanner interface{ Scan(dest ...any) error }

func scanBooking(s scanner) (domain.Booking, error) {
	var b domain.Booking
	var checkin time.Time
	err := s.Scan(&b.ID, &b.UserID, &b.GuestID, &b.HotelID, &b.HotelName, &b.GuestName, &b.Phone,
		&checkin, &b.Nights, &b.Visitors, &b.Subtotal, &b.Tax, &b.TotalPrice, &b.CreatedAt)
	if err != nil {
		return domain.Booking{}, err
	}
	b.CheckinDate = checkin.Format(dateLayout)
	return b, nil
}

func (r *Repo) GetBooking(ctx context.Context, id string) (b domain.Booking, err error) {
	defer observe("get_booking", time.Now(), &err)
	b, err = scanBooking(r.db.QueryRowContext(ctx, getBookingSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, err
}

func (r *Repo) ListBookings(ctx context.Context, userID string) (out []domain.Booking, err error) {
	defer observe("list_bookings", time.Now(), &err)
	rows, err := r.db.QueryContext(ctx, listBookingsSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out = []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		if b, err = scanBooking(rows); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	err = rows.Err()
	return out, err
}
