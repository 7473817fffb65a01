package repository

import (
	"context"
	"hash/fnv"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentStatusApproved = "APPROVED"

const bookingViewQuery = `
	SELECT b.id, b.user_id, b.room_id, r.room_number,
	       b.start_date, b.end_date, b.total_cents, b.status,
	       b.created_at, b.updated_at
	FROM bookings b
	JOIN rooms r ON r.id = b.room_id
`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Reserve re-checks the overlap condition and inserts the booking as one
// atomic unit. A transaction-scoped advisory lock keyed by room id
// serializes concurrent reserves on the same room across the
// check-then-insert; the bookings_no_overlap exclusion constraint is the
// storage-layer backstop, so even a path that skipped the lock could not
// commit two overlapping rows.
func (r *BookingRepository) Reserve(ctx context.Context, b *booking.Booking) (*usecase.BookingView, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin reserve transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, roomLockKey(b.RoomID())); err != nil {
		return nil, infra.WrapRepoErr("failed to acquire room lock", err)
	}

	var overlapping int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(1) FROM bookings
		WHERE room_id = $1 AND start_date < $3 AND end_date > $2`,
		b.RoomID(), b.Stay().Start(), b.Stay().End(),
	).Scan(&overlapping)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	if overlapping > 0 {
		return nil, infra.WrapRepoErr("room already booked for the requested range", nil, infra.KindConflict)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, user_id, room_id, start_date, end_date, total_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID(), b.UserID(), b.RoomID(), b.Stay().Start(), b.Stay().End(),
		b.Total().Cents(), b.Status().String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert booking", err, infra.KindFromPgErr(err))
	}

	view, err := scanBookingView(tx.QueryRow(ctx, bookingViewQuery+` WHERE b.id = $1`, b.ID()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read created booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit reserve transaction", err, infra.KindFromPgErr(err))
	}

	return view, nil
}

// Confirm transitions the booking to CONFIRMED and appends the payment
// record in the same transaction. The guarded UPDATE makes repeated
// confirmations lose atomically: a row that is already CONFIRMED matches
// nothing and is reported as a conflict.
func (r *BookingRepository) Confirm(ctx context.Context, bookingID uuid.UUID, amountCents int64) (*usecase.BookingView, *usecase.PaymentView, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to begin confirm transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ct, err := tx.Exec(ctx, `
		UPDATE bookings SET status = $2, updated_at = now()
		WHERE id = $1 AND status = $3`,
		bookingID, booking.StatusConfirmed.String(), booking.StatusPendingPayment.String(),
	)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to confirm booking", err)
	}
	if ct.RowsAffected() == 0 {
		var status string
		err := tx.QueryRow(ctx, `SELECT status FROM bookings WHERE id = $1`, bookingID).Scan(&status)
		if infra.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		if err != nil {
			return nil, nil, infra.WrapRepoErr("failed to check booking status", err)
		}
		return nil, nil, infra.WrapRepoErr("booking already confirmed", nil, infra.KindConflict)
	}

	payment := &usecase.PaymentView{
		ID:          uuid.New(),
		BookingID:   bookingID,
		AmountCents: amountCents,
		Status:      paymentStatusApproved,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO payments (id, booking_id, amount_cents, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		payment.ID, bookingID, amountCents, paymentStatusApproved,
	).Scan(&payment.CreatedAt)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to insert payment", err, infra.KindFromPgErr(err))
	}

	view, err := scanBookingView(tx.QueryRow(ctx, bookingViewQuery+` WHERE b.id = $1`, bookingID))
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to read confirmed booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, infra.WrapRepoErr("failed to commit confirm transaction", err)
	}

	return view, payment, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.BookingView, error) {
	view, err := scanBookingView(r.pool.QueryRow(ctx, bookingViewQuery+` WHERE b.id = $1`, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*usecase.BookingView, error) {
	rows, err := r.pool.Query(ctx,
		bookingViewQuery+` WHERE b.user_id = $1 ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user ID", err)
	}
	defer rows.Close()

	var views []*usecase.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return views, nil
}

func scanBookingView(row pgx.Row) (*usecase.BookingView, error) {
	var v usecase.BookingView
	err := row.Scan(
		&v.ID, &v.UserID, &v.RoomID, &v.RoomNumber,
		&v.StartDate, &v.EndDate, &v.TotalCents, &v.Status,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Nights = int(v.EndDate.Sub(v.StartDate).Hours() / 24)
	return &v, nil
}

// roomLockKey derives the advisory-lock key from the room id. FNV keeps
// the key stable across processes; a hash collision only costs spurious
// serialization, never a missed conflict (the exclusion constraint holds
// regardless).
func roomLockKey(roomID uuid.UUID) int64 {
	h := fnv.New64a()
	_, _ = h.Write(roomID[:])
	return int64(h.Sum64())
}
