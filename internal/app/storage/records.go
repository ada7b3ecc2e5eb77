package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScrambleRecord is a stored scramble.
type ScrambleRecord struct {
	ScrambleID string
	CreatedAt  time.Time
	CubeSize   int
	Length     int
	Notation   string
	StateJSON  string
}

// SolveRecord is a stored solve result.
type SolveRecord struct {
	SolveID    string
	CreatedAt  time.Time
	CubeSize   int
	ScrambleID *string
	Method     string
	StepCount  int
	MoveCount  int
	DurationMs int64
	Notation   string
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create stores a scramble and returns its ID.
func (r *ScrambleRepository) Create(cubeSize, length int, notation, stateJSON string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, cube_size, length, notation, state_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), cubeSize, length, notation, stateJSON)

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// Get retrieves a scramble by ID. Returns nil when no row matches.
func (r *ScrambleRepository) Get(scrambleID string) (*ScrambleRecord, error) {
	var rec ScrambleRecord
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT scramble_id, created_at, cube_size, length, notation, state_json
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID).Scan(
		&rec.ScrambleID, &createdAtStr, &rec.CubeSize,
		&rec.Length, &rec.Notation, &rec.StateJSON,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &rec, nil
}

// GetLast retrieves the most recent scramble.
func (r *ScrambleRepository) GetLast() (*ScrambleRecord, error) {
	var scrambleID string
	err := r.db.QueryRow(`
		SELECT scramble_id FROM scrambles
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&scrambleID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last scramble: %w", err)
	}

	return r.Get(scrambleID)
}

// List retrieves recent scrambles.
func (r *ScrambleRepository) List(limit int) ([]ScrambleRecord, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, cube_size, length, notation, state_json
		FROM scrambles
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var records []ScrambleRecord
	for rows.Next() {
		var rec ScrambleRecord
		var createdAtStr string

		err := rows.Scan(
			&rec.ScrambleID, &createdAtStr, &rec.CubeSize,
			&rec.Length, &rec.Notation, &rec.StateJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}

		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Delete deletes a scramble.
func (r *ScrambleRepository) Delete(scrambleID string) error {
	_, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a solve result and returns its ID. scrambleID may be empty
// when the solve was not produced from a stored scramble.
func (r *SolveRepository) Create(cubeSize int, scrambleID, method string, stepCount, moveCount int, durationMs int64, notation string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var scramblePtr *string
	if scrambleID != "" {
		scramblePtr = &scrambleID
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, cube_size, scramble_id, method, step_count, move_count, duration_ms, notation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), cubeSize, scramblePtr, method, stepCount, moveCount, durationMs, notation)

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. Returns nil when no row matches.
func (r *SolveRepository) Get(solveID string) (*SolveRecord, error) {
	var rec SolveRecord
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, created_at, cube_size, scramble_id, method, step_count, move_count, duration_ms, notation
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(
		&rec.SolveID, &createdAtStr, &rec.CubeSize, &rec.ScrambleID,
		&rec.Method, &rec.StepCount, &rec.MoveCount, &rec.DurationMs, &rec.Notation,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &rec, nil
}

// GetLast retrieves the most recent solve.
func (r *SolveRepository) GetLast() (*SolveRecord, error) {
	var solveID string
	err := r.db.QueryRow(`
		SELECT solve_id FROM solves
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&solveID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return r.Get(solveID)
}

// List retrieves recent solves.
func (r *SolveRepository) List(limit int) ([]SolveRecord, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, cube_size, scramble_id, method, step_count, move_count, duration_ms, notation
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var records []SolveRecord
	for rows.Next() {
		var rec SolveRecord
		var createdAtStr string

		err := rows.Scan(
			&rec.SolveID, &createdAtStr, &rec.CubeSize, &rec.ScrambleID,
			&rec.Method, &rec.StepCount, &rec.MoveCount, &rec.DurationMs, &rec.Notation,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Delete deletes a solve.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}
