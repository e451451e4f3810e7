package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"houseBooker/internal/config"
	"houseBooker/internal/lib/dates"
	"houseBooker/internal/models"
	"houseBooker/internal/storage"

	_ "github.com/lib/pq"
)

// houseLockKey identifies the single bookable resource for pg_advisory_xact_lock.
const houseLockKey = 7_001

const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id         BIGSERIAL PRIMARY KEY,
		first_name VARCHAR(80)  NOT NULL,
		last_name  VARCHAR(120) NOT NULL,
		color      VARCHAR(7)   NOT NULL DEFAULT '#0d6efd',
		created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		CONSTRAINT uq_user_fullname UNIQUE (first_name, last_name)
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT      NOT NULL REFERENCES users (id),
		start_date DATE        NOT NULL,
		end_date   DATE        NOT NULL,
		companions VARCHAR(255),
		nights     INTEGER     NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT ck_booking_date_order CHECK (end_date >= start_date)
	);

	CREATE INDEX IF NOT EXISTS ix_booking_timerange ON bookings (start_date, end_date);`

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Storage struct {
	DB *sql.DB
	queries
}

// queries holds every statement so the same code runs on the pool and inside a transaction.
type queries struct {
	q querier
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db, queries: queries{q: db}}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return nil
}

// Atomically runs fn in a transaction holding the house advisory lock, so
// concurrent check-then-write sequences cannot interleave.
func (s *Storage) Atomically(ctx context.Context, fn func(tx storage.BookingTx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, houseLockKey); err != nil {
		return fmt.Errorf("failed to lock bookings: %w", err)
	}

	if err = fn(&queries{q: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func bind(n int) string {
	return "$" + strconv.Itoa(n)
}

const bookingColumns = `id, user_id, start_date, end_date, companions, nights, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(row scanner) (models.Booking, error) {
	var b models.Booking
	var companions sql.NullString

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.StartDate,
		&b.EndDate,
		&companions,
		&b.Nights,
		&b.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}

	b.StartDate = dates.Day(b.StartDate)
	b.EndDate = dates.Day(b.EndDate)
	b.Companions = companions.String

	return b, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (q *queries) Booking(ctx context.Context, id int64) (models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1`

	b, err := scanBooking(q.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}

func (q *queries) FindBookings(ctx context.Context, f storage.Filter) ([]models.Booking, error) {
	where, args := f.SQL(bind)

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ` + where + `
		ORDER BY start_date ASC, id ASC`

	rows, err := q.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (q *queries) InsertBooking(ctx context.Context, b *models.Booking) error {
	query := `
		INSERT INTO bookings (user_id, start_date, end_date, companions, nights, created_at)
		VALUES ($1, $2::date, $3::date, $4, $5, NOW())
		RETURNING id, created_at`

	err := q.q.QueryRowContext(ctx, query,
		b.UserID,
		dates.Format(b.StartDate),
		dates.Format(b.EndDate),
		nullable(b.Companions),
		b.Nights,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (q *queries) UpdateBookingDates(ctx context.Context, id int64, start, end time.Time, nights int) error {
	query := `
		UPDATE bookings
		SET start_date = $1::date, end_date = $2::date, nights = $3
		WHERE id = $4`

	res, err := q.q.ExecContext(ctx, query, dates.Format(start), dates.Format(end), nights, id)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	return expectOne(res, storage.ErrBookingNotFound)
}

func (q *queries) DeleteBooking(ctx context.Context, id int64) error {
	res, err := q.q.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return expectOne(res, storage.ErrBookingNotFound)
}

func expectOne(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return notFound
	}

	return nil
}

const userColumns = `id, first_name, last_name, color, created_at`

func scanUser(row scanner) (models.User, error) {
	var u models.User

	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Color, &u.CreatedAt)

	return u, err
}

func (s *Storage) User(ctx context.Context, id int64) (models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1`

	u, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) Users(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY last_name ASC, first_name ASC, id ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *models.User) error {
	if u.Color == "" {
		u.Color = models.DefaultColor
	}

	query := `
		INSERT INTO users (first_name, last_name, color, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at`

	err := s.DB.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.Color).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// SetUserColors writes all colors in one transaction.
func (s *Storage) SetUserColors(ctx context.Context, colors map[int64]string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for id, color := range colors {
		res, err := tx.ExecContext(ctx, `UPDATE users SET color = $1 WHERE id = $2`, color, id)
		if err != nil {
			return fmt.Errorf("failed to set color of user %d: %w", id, err)
		}
		if err = expectOne(res, storage.ErrUserNotFound); err != nil {
			return fmt.Errorf("user %d: %w", id, err)
		}
	}

	return tx.Commit()
}
