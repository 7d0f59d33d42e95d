// ABOUTME: SQLite-backed store for "email updates" subscriptions collected on the registration page.
// ABOUTME: Provides subscribe (idempotent per address), unsubscribe by token, list, and count.
package signup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

var (
	// ErrInvalidEmail is returned when an address cannot be parsed.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrNotFound is returned when no subscription matches a token.
	ErrNotFound = errors.New("subscription not found")
)

const timeLayout = time.RFC3339

// busyTimeoutMS is how long a writer waits on a locked database before
// failing with SQLITE_BUSY.
const busyTimeoutMS = 5000

// Subscription is one address signed up for season updates.
type Subscription struct {
	ID        ulid.ULID
	Email     string
	Division  string
	Token     string
	CreatedAt time.Time
}

// Store persists subscriptions in a SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the subscription database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	// busy_timeout is per connection; the DSN applies it to every pooled one.
	db, err := sql.Open("sqlite3", path+"?_busy_timeout="+strconv.Itoa(busyTimeoutMS))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	schema := `
		CREATE TABLE IF NOT EXISTS subscriptions (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			division TEXT NOT NULL,
			token TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL
		);`

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// NormalizeEmail trims and lowercases addr and checks that it parses as a
// bare address.
func NormalizeEmail(addr string) (string, error) {
	addr = strings.ToLower(strings.TrimSpace(addr))
	if addr == "" {
		return "", ErrInvalidEmail
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, addr)
	}
	return addr, nil
}

// Subscribe records email for updates. Subscribing an address twice returns
// the existing subscription unchanged.
func (s *Store) Subscribe(ctx context.Context, email, division string) (*Subscription, error) {
	email, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	existing, err := s.byEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	sub := &Subscription{
		ID:        ulid.Make(),
		Email:     email,
		Division:  strings.TrimSpace(division),
		Token:     uuid.NewString(),
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO subscriptions (id, email, division, token, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(email) DO NOTHING`,
		sub.ID.String(),
		sub.Email,
		sub.Division,
		sub.Token,
		sub.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert subscription: %w", err)
	}

	// A concurrent subscribe may have won the insert.
	return s.byEmail(ctx, email)
}

// Unsubscribe removes the subscription identified by token.
func (s *Store) Unsubscribe(ctx context.Context, token string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every subscription, oldest first.
func (s *Store) List(ctx context.Context) ([]Subscription, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, division, token, created_at FROM subscriptions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query subscriptions: %w", err)
	}
	defer rows.Close()

	var out []Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}
	return out, nil
}

// Count returns the number of subscriptions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscriptions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count subscriptions: %w", err)
	}
	return n, nil
}

func (s *Store) byEmail(ctx context.Context, email string) (*Subscription, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, division, token, created_at FROM subscriptions WHERE email = ?`, email)
	sub, err := scanSubscription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sub, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubscription(sc scanner) (*Subscription, error) {
	var (
		id, created string
		sub         Subscription
	)
	if err := sc.Scan(&id, &sub.Email, &sub.Division, &sub.Token, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan subscription: %w", err)
	}
	parsedID, err := ulid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse subscription id: %w", err)
	}
	sub.ID = parsedID
	sub.CreatedAt, err = time.Parse(timeLayout, created)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	return &sub, nil
}
