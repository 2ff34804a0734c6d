package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Medium is the durable backing for a Store. Load returns (nil, nil) when
// nothing has been saved yet.
type Medium interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Close() error
}

// FileMedium persists the snapshot as an indented JSON file.
type FileMedium struct {
	path string
}

func NewFileMedium(path string) *FileMedium {
	return &FileMedium{path: path}
}

func (m *FileMedium) Load(_ context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse history file: %w", err)
	}
	return &snap, nil
}

func (m *FileMedium) Save(_ context.Context, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}

func (m *FileMedium) Close() error { return nil }
