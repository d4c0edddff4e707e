package api

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DropSchema removes every table owned by the store
	DropSchema = `DROP TABLE IF EXISTS passes;`

	// Schema creates the passes table
	Schema = `
		CREATE TABLE IF NOT EXISTS passes (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			seat_row INTEGER NOT NULL,
			seat_col INTEGER NOT NULL,
			seat_id INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_passes_seat_id ON passes (seat_id);
	`
)

// StoredPass is a decoded pass as persisted in the database.
type StoredPass struct {
	ID     string
	Code   string
	Row    int
	Col    int
	SeatID int
}

// InitDB initializes and returns a SQLite database connection
func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// CreateSchema creates the passes table if it does not exist
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SavePass stores a single decoded pass and returns its generated ID
func SavePass(db *sql.DB, p StoredPass) (string, error) {
	p.ID = uuid.New().String()

	query := `INSERT INTO passes (id, code, seat_row, seat_col, seat_id) VALUES (?, ?, ?, ?, ?)`
	if _, err := db.Exec(query, p.ID, p.Code, p.Row, p.Col, p.SeatID); err != nil {
		return "", fmt.Errorf("failed to insert pass: %w", err)
	}

	return p.ID, nil
}

// SavePasses stores a batch of decoded passes in one transaction and returns
// their generated IDs in input order
func SavePasses(db *sql.DB, passes []StoredPass) ([]string, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO passes (id, code, seat_row, seat_col, seat_id) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	ids := make([]string, len(passes))
	for i, p := range passes {
		ids[i] = uuid.New().String()
		if _, err := stmt.Exec(ids[i], p.Code, p.Row, p.Col, p.SeatID); err != nil {
			return nil, fmt.Errorf("failed to insert pass %s: %w", p.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return ids, nil
}

// GetPassBySeatID fetches the earliest stored pass for a seat
func GetPassBySeatID(db *sql.DB, seatID int) (*StoredPass, error) {
	query := `SELECT id, code, seat_row, seat_col, seat_id FROM passes WHERE seat_id = ? ORDER BY created_at, rowid LIMIT 1`

	var p StoredPass
	err := db.QueryRow(query, seatID).Scan(&p.ID, &p.Code, &p.Row, &p.Col, &p.SeatID)
	if err == sql.ErrNoRows {
		return nil, nil // Pass not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query pass: %w", err)
	}

	return &p, nil
}

// ListPasses fetches all stored passes ordered by seat
func ListPasses(db *sql.DB) ([]StoredPass, error) {
	query := `SELECT id, code, seat_row, seat_col, seat_id FROM passes ORDER BY seat_id, rowid`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query passes: %w", err)
	}
	defer rows.Close()

	var passes []StoredPass
	for rows.Next() {
		var p StoredPass
		if err := rows.Scan(&p.ID, &p.Code, &p.Row, &p.Col, &p.SeatID); err != nil {
			return nil, fmt.Errorf("failed to scan pass: %w", err)
		}
		passes = append(passes, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating passes: %w", err)
	}

	return passes, nil
}

// ListSeatIDs fetches the distinct seat ids that have a stored pass
func ListSeatIDs(db *sql.DB) ([]int, error) {
	rows, err := db.Query(`SELECT DISTINCT seat_id FROM passes ORDER BY seat_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query seat ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan seat id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seat ids: %w", err)
	}

	return ids, nil
}
