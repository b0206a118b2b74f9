package booking_models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joy095/rental/logger"
	"github.com/joy095/rental/models/shared_models"
	"github.com/joy095/rental/utils"
)

// Booking represents a customer's reservation of a vehicle for an inclusive
// date range. TotalDays and TotalAmountCents are derived at creation time and
// never recomputed: a later rate change does not touch existing bookings.
type Booking struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	VehicleID        uuid.UUID `json:"vehicle_id"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	TotalDays        int       `json:"total_days"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	CreatedAt        time.Time `json:"created_at"`
}

// BookingWithDetails joins a booking with requester and vehicle display
// fields for listing endpoints.
type BookingWithDetails struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	UserName         string    `json:"user_name"`
	UserEmail        string    `json:"user_email"`
	VehicleID        uuid.UUID `json:"vehicle_id"`
	VehicleName      string    `json:"vehicle_name"`
	VehicleType      string    `json:"vehicle_type"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	TotalDays        int       `json:"total_days"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	CreatedAt        time.Time `json:"created_at"`
}

// blockingOverlapCondition is the SQL twin of DateInterval.Overlaps, applied
// to blocking bookings: $1 is the vehicle, $2 the blocking status list, $3 the
// candidate start and $4 the candidate end. Inclusive on both bounds.
const blockingOverlapCondition = `vehicle_id = $1
		  AND status = ANY($2)
		  AND start_date <= $4
		  AND end_date >= $3`

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx, so the overlap
// check runs identically inside and outside a transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func hasBlockingOverlap(ctx context.Context, q rowQuerier, vehicleID uuid.UUID, interval DateInterval) (bool, error) {
	var conflict bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE `+blockingOverlapCondition+`
		)`,
		vehicleID, shared_models.BlockingStatuses, interval.Start, interval.End,
	).Scan(&conflict)
	if err != nil {
		return false, fmt.Errorf("database error checking conflicts: %w", err)
	}
	return conflict, nil
}

// CreateBookingIfAvailable atomically commits a reservation. Inside a single
// transaction it locks the vehicle row, rejects disabled or missing vehicles,
// checks the candidate interval against blocking (confirmed/active) bookings
// and inserts the new pending booking priced at the vehicle's current rate.
// The row lock serializes commits and blocking transitions per vehicle, so
// the conflict decision never acts on a stale read.
func CreateBookingIfAvailable(ctx context.Context, db *pgxpool.Pool, userID, vehicleID uuid.UUID, interval DateInterval) (*Booking, error) {
	logger.InfoLogger.Infof("Attempting to book vehicle %s for %s to %s",
		vehicleID, interval.Start.Format("2006-01-02"), interval.End.Format("2006-01-02"))

	tx, err := db.Begin(ctx)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to begin booking transaction: %v", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the vehicle row so concurrent commits for the same vehicle
	// serialize against the conflict check below.
	var ratePerDayCents int64
	err = tx.QueryRow(ctx,
		`SELECT price_per_day_cents FROM vehicles WHERE id = $1 AND available = TRUE FOR UPDATE`,
		vehicleID,
	).Scan(&ratePerDayCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.WarnLogger.Warnf("Vehicle %s not found or not available for booking", vehicleID)
			return nil, utils.ErrVehicleNotFound
		}
		logger.ErrorLogger.Errorf("Failed to lock vehicle %s: %v", vehicleID, err)
		return nil, fmt.Errorf("database error locking vehicle: %w", err)
	}

	conflict, err := hasBlockingOverlap(ctx, tx, vehicleID, interval)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed conflict check for vehicle %s: %v", vehicleID, err)
		return nil, err
	}
	if conflict {
		logger.WarnLogger.Warnf("Conflicting booking found for vehicle %s in requested range", vehicleID)
		return nil, utils.ErrBookingConflict
	}

	id, err := shared_models.GenerateUUIDv7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID for booking: %w", err)
	}

	days, amountCents := interval.PriceCents(ratePerDayCents)
	booking := &Booking{
		ID:               id,
		UserID:           userID,
		VehicleID:        vehicleID,
		StartDate:        interval.Start,
		EndDate:          interval.End,
		TotalDays:        days,
		TotalAmountCents: amountCents,
		Status:           shared_models.BookingStatusPending,
		PaymentStatus:    shared_models.PaymentStatusPending,
		CreatedAt:        time.Now(),
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO bookings (
			id, user_id, vehicle_id, start_date, end_date,
			total_days, total_amount_cents, status, payment_status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		booking.ID, booking.UserID, booking.VehicleID, booking.StartDate, booking.EndDate,
		booking.TotalDays, booking.TotalAmountCents, booking.Status, booking.PaymentStatus, booking.CreatedAt,
	)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to insert booking for vehicle %s: %v", vehicleID, err)
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		logger.ErrorLogger.Errorf("Failed to commit booking for vehicle %s: %v", vehicleID, err)
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	logger.InfoLogger.Infof("Booking %s created for vehicle %s (%d days, %d cents)",
		booking.ID, vehicleID, booking.TotalDays, booking.TotalAmountCents)
	return booking, nil
}

// HasConflictingBooking is the advisory availability check: read-only, no
// lock taken, so a true result is not a hold. The commit path re-checks under
// the vehicle row lock.
func HasConflictingBooking(ctx context.Context, db *pgxpool.Pool, vehicleID uuid.UUID, interval DateInterval) (bool, error) {
	conflict, err := hasBlockingOverlap(ctx, db, vehicleID, interval)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed availability check for vehicle %s: %v", vehicleID, err)
		return false, err
	}
	return conflict, nil
}

// GetBookingByID fetches a booking record by its ID.
func GetBookingByID(ctx context.Context, db *pgxpool.Pool, bookingID uuid.UUID) (*Booking, error) {
	booking := &Booking{}
	query := `
		SELECT id, user_id, vehicle_id, start_date, end_date,
		       total_days, total_amount_cents, status, payment_status, created_at
		FROM bookings
		WHERE id = $1`

	err := db.QueryRow(ctx, query, bookingID).Scan(
		&booking.ID, &booking.UserID, &booking.VehicleID,
		&booking.StartDate, &booking.EndDate,
		&booking.TotalDays, &booking.TotalAmountCents,
		&booking.Status, &booking.PaymentStatus, &booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			logger.WarnLogger.Warnf("Booking with ID %s not found", bookingID)
			return nil, utils.ErrBookingNotFound
		}
		logger.ErrorLogger.Errorf("Failed to fetch booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("database error fetching booking: %w", err)
	}

	return booking, nil
}

// UpdateBookingStatus applies a validated transition to the booking the
// caller fetched. The write is compare-and-set against that fetched state, so
// two admins racing on the same booking cannot both win; the loser gets
// ErrBookingStateChanged. A transition into a blocking status re-checks the
// booking's interval against blocking bookings under the vehicle row lock, so
// no two blocking bookings can ever overlap. Edge validation happens in the
// controller before this is called.
func UpdateBookingStatus(ctx context.Context, db *pgxpool.Pool, booking *Booking, status, paymentStatus string) error {
	logger.InfoLogger.Infof("Updating booking %s to status=%s payment_status=%s", booking.ID, status, paymentStatus)

	tx, err := db.Begin(ctx)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to begin status update transaction: %v", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if shared_models.IsBlockingStatus(status) && !shared_models.IsBlockingStatus(booking.Status) {
		// Becoming blocking takes the vehicle's dates off the market;
		// serialize against commits and other blocking transitions.
		var vehicleID uuid.UUID
		err = tx.QueryRow(ctx,
			`SELECT id FROM vehicles WHERE id = $1 FOR UPDATE`, booking.VehicleID,
		).Scan(&vehicleID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return utils.ErrVehicleNotFound
			}
			logger.ErrorLogger.Errorf("Failed to lock vehicle %s: %v", booking.VehicleID, err)
			return fmt.Errorf("database error locking vehicle: %w", err)
		}

		interval := DateInterval{Start: booking.StartDate, End: booking.EndDate}
		conflict, err := hasBlockingOverlap(ctx, tx, booking.VehicleID, interval)
		if err != nil {
			logger.ErrorLogger.Errorf("Failed conflict check for vehicle %s: %v", booking.VehicleID, err)
			return err
		}
		if conflict {
			logger.WarnLogger.Warnf("Rejected blocking transition for booking %s, dates already taken", booking.ID)
			return utils.ErrBookingConflict
		}
	}

	var cmdTag pgconn.CommandTag
	if paymentStatus != "" {
		cmdTag, err = tx.Exec(ctx,
			`UPDATE bookings SET status = $2, payment_status = $3
			 WHERE id = $1 AND status = $4 AND payment_status = $5`,
			booking.ID, status, paymentStatus, booking.Status, booking.PaymentStatus)
	} else {
		cmdTag, err = tx.Exec(ctx,
			`UPDATE bookings SET status = $2 WHERE id = $1 AND status = $3`,
			booking.ID, status, booking.Status)
	}
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to update booking %s status: %v", booking.ID, err)
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`, booking.ID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("database error fetching booking: %w", err)
		}
		if !exists {
			return utils.ErrBookingNotFound
		}
		logger.WarnLogger.Warnf("Booking %s changed concurrently, transition from %s rejected", booking.ID, booking.Status)
		return utils.ErrBookingStateChanged
	}

	if err := tx.Commit(ctx); err != nil {
		logger.ErrorLogger.Errorf("Failed to commit status update for booking %s: %v", booking.ID, err)
		return fmt.Errorf("failed to commit status update: %w", err)
	}

	logger.InfoLogger.Infof("Booking %s status updated", booking.ID)
	return nil
}

const bookingDetailColumns = `
	b.id, b.user_id, u.name, u.email,
	b.vehicle_id, v.name, v.type,
	b.start_date, b.end_date, b.total_days, b.total_amount_cents,
	b.status, b.payment_status, b.created_at`

func scanBookingDetails(rows pgx.Rows) ([]BookingWithDetails, error) {
	var bookings []BookingWithDetails
	for rows.Next() {
		var b BookingWithDetails
		err := rows.Scan(
			&b.ID, &b.UserID, &b.UserName, &b.UserEmail,
			&b.VehicleID, &b.VehicleName, &b.VehicleType,
			&b.StartDate, &b.EndDate, &b.TotalDays, &b.TotalAmountCents,
			&b.Status, &b.PaymentStatus, &b.CreatedAt,
		)
		if err != nil {
			logger.ErrorLogger.Errorf("Failed to scan booking row: %v", err)
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// GetBookingsByUser retrieves a requester's bookings joined with user and
// vehicle details, newest first.
func GetBookingsByUser(ctx context.Context, db *pgxpool.Pool, userID uuid.UUID) ([]BookingWithDetails, error) {
	query := `
		SELECT ` + bookingDetailColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN vehicles v ON v.id = b.vehicle_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	rows, err := db.Query(ctx, query, userID)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch bookings for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer rows.Close()

	return scanBookingDetails(rows)
}

// GetAllBookings retrieves every booking in the system with details, newest
// first (admin view).
func GetAllBookings(ctx context.Context, db *pgxpool.Pool) ([]BookingWithDetails, error) {
	query := `
		SELECT ` + bookingDetailColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN vehicles v ON v.id = b.vehicle_id
		ORDER BY b.created_at DESC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to fetch all bookings: %v", err)
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer rows.Close()

	return scanBookingDetails(rows)
}

// CountBookings counts bookings, optionally filtered by status.
func CountBookings(ctx context.Context, db *pgxpool.Pool, status string) (int64, error) {
	var count int64
	var err error
	if status != "" {
		err = db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE status = $1`, status).Scan(&count)
	} else {
		err = db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	}
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to count bookings: %v", err)
		return 0, fmt.Errorf("database error counting bookings: %w", err)
	}
	return count, nil
}

// SumPaidRevenueCents sums total_amount_cents over paid bookings. Amounts are
// integer minor units, so the running dashboard sum cannot drift.
func SumPaidRevenueCents(ctx context.Context, db *pgxpool.Pool) (int64, error) {
	var revenue int64
	err := db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount_cents), 0) FROM bookings WHERE payment_status = $1`,
		shared_models.PaymentStatusPaid,
	).Scan(&revenue)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to sum paid revenue: %v", err)
		return 0, fmt.Errorf("database error summing revenue: %w", err)
	}
	return revenue, nil
}
