package leaderboard

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresBoard stores entries in PostgreSQL
type PostgresBoard struct {
	db *sql.DB
}

// NewPostgresBoard connects to connectionString and creates the schema
func NewPostgresBoard(ctx context.Context, connectionString string) (*PostgresBoard, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	board := &PostgresBoard{db: db}
	if err := board.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return board, nil
}

func (pb *PostgresBoard) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS leaderboard (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		height INTEGER NOT NULL,
		created_at BIGINT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS leaderboard_rank_idx ON leaderboard (height DESC, created_at ASC);
	`

	_, err := pb.db.ExecContext(ctx, schema)
	return err
}

// Add inserts e and trims the table to MaxEntries rows
func (pb *PostgresBoard) Add(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	_, err := pb.db.ExecContext(ctx,
		`INSERT INTO leaderboard (id, name, height, created_at) VALUES ($1, $2, $3, $4)`,
		e.ID, e.Name, e.Height, e.Timestamp)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to save entry: %w", err)
	}

	// trimming is best-effort: the insert already succeeded
	pb.db.ExecContext(ctx, `
	DELETE FROM leaderboard WHERE id NOT IN (
		SELECT id FROM leaderboard ORDER BY height DESC, created_at ASC LIMIT $1
	)`, MaxEntries)

	return e, nil
}

// Top returns up to limit entries, best first
func (pb *PostgresBoard) Top(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := pb.db.QueryContext(ctx,
		`SELECT id, name, height, created_at FROM leaderboard ORDER BY height DESC, created_at ASC LIMIT $1`,
		max(limit, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Height, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	return entries, nil
}

// Close closes the database connection
func (pb *PostgresBoard) Close() error {
	return pb.db.Close()
}
