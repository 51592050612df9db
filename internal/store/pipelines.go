package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/status"
)

// CreatePipeline adds an empty pipeline. Names are unique.
func (s *Store) CreatePipeline(name string) (domain.Pipeline, error) {
	if name == "" {
		return domain.Pipeline{}, status.InvalidParameter("pipeline name is empty")
	}

	_, err := s.db.Exec(
		`INSERT INTO pipelines (name, created_at) VALUES (?, ?)`,
		name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return domain.Pipeline{}, status.InvalidParameter("pipeline already exists: %s", name)
		}
		return domain.Pipeline{}, err
	}
	return s.GetPipeline(name)
}

// GetPipeline returns a pipeline with its stages in order.
func (s *Store) GetPipeline(name string) (domain.Pipeline, error) {
	var (
		p  domain.Pipeline
		ts string
	)
	err := s.db.QueryRow(
		`SELECT id, name, created_at FROM pipelines WHERE name = ?`, name,
	).Scan(&p.ID, &p.Name, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Pipeline{}, status.NotFound("pipeline not found: %s", name)
	}
	if err != nil {
		return domain.Pipeline{}, err
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, ts); err != nil {
		return domain.Pipeline{}, err
	}

	rows, err := s.db.Query(
		`SELECT stage FROM pipeline_stages WHERE pipeline_id = ? ORDER BY position ASC`, p.ID,
	)
	if err != nil {
		return domain.Pipeline{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var stage string
		if err := rows.Scan(&stage); err != nil {
			return domain.Pipeline{}, err
		}
		p.Stages = append(p.Stages, stage)
	}
	return p, rows.Err()
}

// AddStage appends stage to the end of the pipeline.
func (s *Store) AddStage(pipeline, stage string) (domain.Pipeline, error) {
	if stage == "" {
		return domain.Pipeline{}, status.InvalidParameter("stage name is empty")
	}
	p, err := s.GetPipeline(pipeline)
	if err != nil {
		return domain.Pipeline{}, err
	}

	_, err = s.db.Exec(
		`INSERT INTO pipeline_stages (pipeline_id, position, stage)
		 VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM pipeline_stages WHERE pipeline_id = ?), ?)`,
		p.ID, p.ID, stage,
	)
	if err != nil {
		return domain.Pipeline{}, fmt.Errorf("add stage: %w", err)
	}
	return s.GetPipeline(pipeline)
}

// RemoveStage drops the first occurrence of stage from the pipeline.
func (s *Store) RemoveStage(pipeline, stage string) (domain.Pipeline, error) {
	p, err := s.GetPipeline(pipeline)
	if err != nil {
		return domain.Pipeline{}, err
	}

	res, err := s.db.Exec(
		`DELETE FROM pipeline_stages WHERE id = (
			SELECT id FROM pipeline_stages WHERE pipeline_id = ? AND stage = ? ORDER BY position LIMIT 1
		)`,
		p.ID, stage,
	)
	if err != nil {
		return domain.Pipeline{}, fmt.Errorf("remove stage: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Pipeline{}, status.NotFound("stage %s not found in pipeline %s", stage, pipeline)
	}
	return s.GetPipeline(pipeline)
}

// DeletePipeline removes a pipeline and its stages.
func (s *Store) DeletePipeline(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`DELETE FROM pipeline_stages WHERE pipeline_id IN (SELECT id FROM pipelines WHERE name = ?)`, name,
	); err != nil {
		return err
	}

	res, err := tx.Exec(`DELETE FROM pipelines WHERE name = ?`, name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return status.NotFound("pipeline not found: %s", name)
	}
	return tx.Commit()
}

// CountPipelines returns the number of stored pipelines.
func (s *Store) CountPipelines() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM pipelines`).Scan(&n)
	return n, err
}
