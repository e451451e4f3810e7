package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"houseBooker/internal/lib/dates"
	"houseBooker/internal/models"
	"houseBooker/internal/storage"

	_ "modernc.org/sqlite"
)

// Dates are kept as ISO text so that lexical comparison equals date comparison.
const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL,
		color      TEXT NOT NULL DEFAULT '#0d6efd',
		created_at TEXT NOT NULL,
		CONSTRAINT uq_user_fullname UNIQUE (first_name, last_name)
	);

	CREATE TABLE IF NOT EXISTS bookings (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id    INTEGER NOT NULL REFERENCES users (id),
		start_date TEXT    NOT NULL,
		end_date   TEXT    NOT NULL,
		companions TEXT,
		nights     INTEGER NOT NULL DEFAULT 1,
		created_at TEXT    NOT NULL,
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

type queries struct {
	q querier
}

// New opens the database file at path, creating its directory when needed.
// Write transactions begin IMMEDIATE, which takes the database write lock up front.
func New(path string) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	dsn := "file:" + path +
		"?_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_txlock=immediate"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
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

func (s *Storage) Atomically(ctx context.Context, fn func(tx storage.BookingTx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = fn(&queries{q: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func bind(int) string {
	return "?"
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

const bookingColumns = `id, user_id, start_date, end_date, companions, nights, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(row scanner) (models.Booking, error) {
	var (
		b          models.Booking
		start, end string
		companions sql.NullString
		createdAt  string
		err        error
	)

	if err = row.Scan(&b.ID, &b.UserID, &start, &end, &companions, &b.Nights, &createdAt); err != nil {
		return models.Booking{}, err
	}

	if b.StartDate, err = dates.Parse(start); err != nil {
		return models.Booking{}, err
	}
	if b.EndDate, err = dates.Parse(end); err != nil {
		return models.Booking{}, err
	}
	if b.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return models.Booking{}, fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	b.Companions = companions.String

	return b, nil
}

func (q *queries) Booking(ctx context.Context, id int64) (models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`

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
		VALUES (?, ?, ?, ?, ?, ?)`

	createdAt := now()

	res, err := q.q.ExecContext(ctx, query,
		b.UserID,
		dates.Format(b.StartDate),
		dates.Format(b.EndDate),
		sql.NullString{String: b.Companions, Valid: b.Companions != ""},
		b.Nights,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if b.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read booking id: %w", err)
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)

	return nil
}

func (q *queries) UpdateBookingDates(ctx context.Context, id int64, start, end time.Time, nights int) error {
	query := `
		UPDATE bookings
		SET start_date = ?, end_date = ?, nights = ?
		WHERE id = ?`

	res, err := q.q.ExecContext(ctx, query, dates.Format(start), dates.Format(end), nights, id)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	return expectOne(res, storage.ErrBookingNotFound)
}

func (q *queries) DeleteBooking(ctx context.Context, id int64) error {
	res, err := q.q.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
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
	var createdAt string

	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Color, &createdAt); err != nil {
		return models.User{}, err
	}

	u.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)

	return u, nil
}

func (s *Storage) User(ctx context.Context, id int64) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

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

	createdAt := now()

	res, err := s.DB.ExecContext(ctx,
		`INSERT INTO users (first_name, last_name, color, created_at) VALUES (?, ?, ?, ?)`,
		u.FirstName, u.LastName, u.Color, createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if u.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read user id: %w", err)
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)

	return nil
}

func (s *Storage) SetUserColors(ctx context.Context, colors map[int64]string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for id, color := range colors {
		res, err := tx.ExecContext(ctx, `UPDATE users SET color = ? WHERE id = ?`, color, id)
		if err != nil {
			return fmt.Errorf("failed to set color of user %d: %w", id, err)
		}
		if err = expectOne(res, storage.ErrUserNotFound); err != nil {
			return fmt.Errorf("user %d: %w", id, err)
		}
	}

	return tx.Commit()
}
