package store

import (
	"time"

	"github.com/nexuslink/nlink/internal/domain"
)

// AddHistory appends an executed line.
func (s *Store) AddHistory(entry domain.HistoryEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO command_history (session_id, line, success, timestamp) VALUES (?, ?, ?, ?)`,
		entry.SessionID,
		entry.Line,
		entry.Success,
		entry.Timestamp.UTC().Format(time.RFC3339),
	)
	return err
}

// ListHistory returns up to limit of the most recent lines, oldest first.
// A limit of zero or less returns everything.
func (s *Store) ListHistory(limit int) ([]domain.HistoryEntry, error) {
	query := `SELECT id, session_id, line, success, timestamp FROM command_history ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HistoryEntry
	for rows.Next() {
		var (
			e  domain.HistoryEntry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Line, &e.Success, &ts); err != nil {
			return nil, err
		}
		if e.Timestamp, err = time.Parse(time.RFC3339, ts); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// CountHistory returns the number of stored lines.
func (s *Store) CountHistory() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM command_history`).Scan(&n)
	return n, err
}
