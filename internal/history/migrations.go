package history

import "fmt"

// migrate creates the outcomes table.
func (s *Store) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS outcomes (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			panel_id   TEXT NOT NULL,
			outcome    TEXT NOT NULL CHECK(outcome IN ('primary', 'secondary', 'dismissed')),
			recorded_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_outcomes_panel ON outcomes(panel_id, recorded_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating outcomes table: %w", err)
	}

	return nil
}
