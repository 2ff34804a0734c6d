package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const snapshotKey = "prediction_history"

// PostgresMedium persists the snapshot as a single jsonb row in a key-value
// table, keeping the medium contract a plain load/save pair.
type PostgresMedium struct {
	pool *pgxpool.Pool
}

func NewPostgresMedium(ctx context.Context, databaseURL string) (*PostgresMedium, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	m := &PostgresMedium{pool: pool}
	if err := m.ensureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return m, nil
}

func (m *PostgresMedium) ensureTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS predictor_state (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure state table: %w", err)
	}
	return nil
}

func (m *PostgresMedium) Load(ctx context.Context) (*Snapshot, error) {
	var data []byte
	err := m.pool.QueryRow(ctx,
		`SELECT value FROM predictor_state WHERE key = $1`, snapshotKey,
	).Scan(&data)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

func (m *PostgresMedium) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = m.pool.Exec(ctx, `
		INSERT INTO predictor_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		snapshotKey, data)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (m *PostgresMedium) Close() error {
	m.pool.Close()
	return nil
}
