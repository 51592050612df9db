package store

import (
	"database/sql"
	"time"

	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/status"
)

// ListComponents returns catalog entries, optionally limited to a category,
// ordered by name then version.
func (s *Store) ListComponents(category string) ([]domain.Component, error) {
	query := `SELECT name, version, category, description FROM components`
	var args []any
	if category != "" {
		query += ` WHERE category = ? COLLATE NOCASE`
		args = append(args, category)
	}
	query += ` ORDER BY name`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Component
	for rows.Next() {
		var c domain.Component
		if err := rows.Scan(&c.Name, &c.Version, &c.Category, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sortComponents(out)
	return out, nil
}

// FindComponent resolves name, and version when given. Without a version the
// highest one wins.
func (s *Store) FindComponent(name, version string) (domain.Component, error) {
	rows, err := s.db.Query(
		`SELECT name, version, category, description FROM components WHERE name = ?`,
		name,
	)
	if err != nil {
		return domain.Component{}, err
	}
	defer rows.Close()

	var (
		best  domain.Component
		found bool
	)
	for rows.Next() {
		var c domain.Component
		if err := rows.Scan(&c.Name, &c.Version, &c.Category, &c.Description); err != nil {
			return domain.Component{}, err
		}
		if version != "" {
			if c.Version == version {
				return c, nil
			}
			continue
		}
		if !found || compareVersions(c.Version, best.Version) > 0 {
			best, found = c, true
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Component{}, err
	}

	if !found {
		if version != "" {
			return domain.Component{}, status.NotFound("component not found: %s version %s", name, version)
		}
		return domain.Component{}, status.NotFound("component not found: %s", name)
	}
	return best, nil
}

// HasComponent reports whether any version of name is registered.
func (s *Store) HasComponent(name string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM components WHERE name = ?`, name).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddComponent registers a catalog entry, replacing an existing description.
func (s *Store) AddComponent(c domain.Component) error {
	if c.Name == "" || c.Version == "" {
		return status.InvalidParameter("component name and version are required")
	}
	if c.Category == "" {
		c.Category = "core"
	}
	_, err := s.db.Exec(
		`INSERT INTO components (name, version, category, description)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(name, version)
		 DO UPDATE SET category = excluded.category, description = excluded.description`,
		c.Name, c.Version, c.Category, c.Description,
	)
	return err
}

// RecordLoad stores a load event. A zero timestamp is replaced by now.
func (s *Store) RecordLoad(event domain.LoadEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO load_events (session_id, component, version, function, timestamp)
		 VALUES (?, ?, ?, ?, ?)`,
		event.SessionID,
		event.Component,
		event.Version,
		nullString(event.Function),
		event.Timestamp.UTC().Format(time.RFC3339),
	)
	return err
}

// ListLoads returns the load events of a session, oldest first. An empty
// session lists every event.
func (s *Store) ListLoads(sessionID string) ([]domain.LoadEvent, error) {
	query := `SELECT id, session_id, component, version, function, timestamp FROM load_events`
	var args []any
	if sessionID != "" {
		query += ` WHERE session_id = ?`
		args = append(args, sessionID)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.LoadEvent
	for rows.Next() {
		var (
			e  domain.LoadEvent
			fn sql.NullString
			ts string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Component, &e.Version, &fn, &ts); err != nil {
			return nil, err
		}
		e.Function = fn.String
		if e.Timestamp, err = time.Parse(time.RFC3339, ts); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// LoadStats returns the number of load events and of distinct components.
func (s *Store) LoadStats() (int, int, error) {
	var events, distinct int
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT component) FROM load_events`,
	).Scan(&events, &distinct)
	return events, distinct, err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
