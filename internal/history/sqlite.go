package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// timeLayout is fixed width so recorded_at sorts as text in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store keeps outcomes in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Record stores e and sets its ID. A zero At is stamped with the current time.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	if e.PanelID == "" {
		return errors.New("recording outcome: empty panel id")
	}
	if !e.Outcome.IsValid() {
		return fmt.Errorf("recording outcome: %w: %q", ErrInvalidOutcome, e.Outcome)
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO outcomes (panel_id, outcome, recorded_at) VALUES (?, ?, ?)`,
		e.PanelID,
		string(e.Outcome),
		e.At.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting outcome: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	return nil
}

// List returns the newest entries first. An empty panelID lists every panel;
// limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, panelID string, limit int) ([]Entry, error) {
	query := `SELECT id, panel_id, outcome, recorded_at FROM outcomes`
	var args []any
	if panelID != "" {
		query += ` WHERE panel_id = ?`
		args = append(args, panelID)
	}
	query += ` ORDER BY recorded_at DESC, id DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying outcomes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating outcomes: %w", err)
	}

	return entries, nil
}

// Last returns the newest entry for panelID.
func (s *Store) Last(ctx context.Context, panelID string) (Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, panel_id, outcome, recorded_at FROM outcomes
		WHERE panel_id = ?
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1
	`, panelID)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Acknowledged reports whether the primary button was ever tapped on panelID.
func (s *Store) Acknowledged(ctx context.Context, panelID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM outcomes WHERE panel_id = ? AND outcome = ?`,
		panelID, string(OutcomePrimary),
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("counting acknowledgements: %w", err)
	}
	return n > 0, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (Entry, error) {
	var (
		e       Entry
		outcome string
		at      string
	)
	if err := sc.Scan(&e.ID, &e.PanelID, &outcome, &at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("scanning outcome: %w", err)
	}
	o, err := ParseOutcome(outcome)
	if err != nil {
		return Entry{}, fmt.Errorf("scanning outcome: %w", err)
	}
	e.Outcome = o

	t, err := time.Parse(timeLayout, at)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing recorded_at %q: %w", at, err)
	}
	e.At = t

	return e, nil
}
