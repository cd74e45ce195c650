package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sitebid/sitebid/internal/calc"
)

// ErrNotFound is returned when an estimate id does not exist.
var ErrNotFound = errors.New("estimate not found")

// Estimate is a persisted input/result pair.
type Estimate struct {
	ID        int64       `json:"id"`
	SessionID string      `json:"sessionId"`
	Title     string      `json:"title,omitempty"`
	Notes     string      `json:"notes,omitempty"`
	Input     calc.Input  `json:"input"`
	Result    calc.Result `json:"result"`
	CreatedAt string      `json:"createdAt"`
}

// EstimateListItem is the compact row returned by ListEstimates.
type EstimateListItem struct {
	ID             int64   `json:"id"`
	CreatedAt      string  `json:"createdAt"`
	Title          string  `json:"title"`
	ProjectType    string  `json:"projectType"`
	RecommendedBid float64 `json:"recommendedBid"`
}

// SaveEstimate persists the input and its computed result and returns the
// new row id.
func (s *Store) SaveEstimate(sessionID, title, notes string, in calc.Input, res calc.Result) (int64, error) {
	resultJSON, err := json.Marshal(res)
	if err != nil {
		return 0, fmt.Errorf("marshal estimate result: %w", err)
	}

	r, err := s.db.Exec(`
		INSERT INTO estimates (session_id, title, notes, project_type, labor_hours, material_cost, crew_size, project_duration, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sessionID, title, notes, in.ProjectType, in.LaborHours, in.MaterialCost, in.CrewSize, in.ProjectDuration, string(resultJSON))
	if err != nil {
		return 0, fmt.Errorf("insert estimate: %w", err)
	}

	id, err := r.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read estimate id: %w", err)
	}
	return id, nil
}

// ListEstimates returns estimates newest first, optionally filtered by a
// title/notes substring.
func (s *Store) ListEstimates(query string) ([]EstimateListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT
			id,
			created_at,
			COALESCE(title, ''),
			project_type,
			result_json
		FROM estimates
		WHERE (? = '' OR COALESCE(title, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query estimates: %w", err)
	}
	defer rows.Close()

	estimates := make([]EstimateListItem, 0)
	for rows.Next() {
		var item EstimateListItem
		var resultJSON string
		if err := rows.Scan(&item.ID, &item.CreatedAt, &item.Title, &item.ProjectType, &resultJSON); err != nil {
			return nil, fmt.Errorf("scan estimate: %w", err)
		}
		item.RecommendedBid = extractBid(resultJSON)
		estimates = append(estimates, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate estimates: %w", err)
	}

	return estimates, nil
}

func extractBid(resultJSON string) float64 {
	var res struct {
		RecommendedBid float64 `json:"recommendedBid"`
	}
	if err := json.Unmarshal([]byte(resultJSON), &res); err != nil {
		return 0
	}
	return res.RecommendedBid
}

// GetEstimate loads one estimate with its full result.
func (s *Store) GetEstimate(id int64) (Estimate, error) {
	var e Estimate
	var resultJSON string
	err := s.db.QueryRow(`
		SELECT id, session_id, COALESCE(title, ''), COALESCE(notes, ''), project_type, labor_hours, material_cost, crew_size, project_duration, result_json, created_at
		FROM estimates
		WHERE id = ?
	`, id).Scan(
		&e.ID,
		&e.SessionID,
		&e.Title,
		&e.Notes,
		&e.Input.ProjectType,
		&e.Input.LaborHours,
		&e.Input.MaterialCost,
		&e.Input.CrewSize,
		&e.Input.ProjectDuration,
		&resultJSON,
		&e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Estimate{}, ErrNotFound
	}
	if err != nil {
		return Estimate{}, fmt.Errorf("query estimate: %w", err)
	}

	if err := json.Unmarshal([]byte(resultJSON), &e.Result); err != nil {
		return Estimate{}, fmt.Errorf("decode estimate result: %w", err)
	}
	return e, nil
}
