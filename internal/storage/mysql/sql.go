package mysql

const upsertUserSQL = `
INSERT INTO users (id, name, phone)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
  name       = VALUES(name),
  updated_at = CURRENT_TIMESTAMP(3)
`

const getUserByPhoneSQL = `SELECT id, name, phone FROM users WHERE phone = ?`

const insertConversationSQL = `
INSERT INTO conversations (user_id, role, message, meta, created_at)
VALUES (?, ?, ?, ?, ?)
`

const listConversationsSQL = `
SELECT id, user_id, role, message, meta, created_at
FROM conversations
WHERE user_id = ?
ORDER BY id
`

const upsertHotelSQL = `
INSERT INTO hotels
  (id, name, area, price_per_night, rating, amenities, position)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name            = VALUES(name),
  area            = VALUES(area),
  price_per_night = VALUES(price_per_night),
  rating          = VALUES(rating),
  amenities       = VALUES(amenities),
  position        = VALUES(position),
  updated_at      = CURRENT_TIMESTAMP(3)
`

// position keeps catalog order, which Search uses as its final tie-break.
const listHotelsSQL = `
SELECT id, name, area, price_per_night, rating, amenities
FROM hotels
ORDER BY position, id
`

const insertBookingSQL = `
INSERT INTO bookings
  (id, user_id, guest_id, hotel_id, hotel_name, guest_name, phone, checkin_date,
   nights, visitors, subtotal, tax, total_price, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const bookingColumns = `id, user_id, guest_id, hotel_id, hotel_name, guest_name, phone,
  checkin_date, nights, visitors, subtotal, tax, total_price, created_at`

const getBookingSQL = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`

const listBookingsSQL = `SELECT ` + bookingColumns + `
FROM bookings
WHERE user_id = ?
ORDER BY created_at, id
`
