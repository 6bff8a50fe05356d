package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"match-backend/internal/shared/telemetry"
)

// FileMirror persists the collection as one JSON array on disk.
type FileMirror struct {
	path string
}

// NewFileMirror constructs a mirror writing to path. The containing
// directory is created on first save.
func NewFileMirror(path string) *FileMirror {
	return &FileMirror{path: path}
}

// LoadAll reads the collection. A missing or unparseable file is treated
// as "no data", never as a fatal error.
func (m *FileMirror) LoadAll(ctx context.Context) ([]Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			telemetry.Warn("storage.read_failed", map[string]any{
				"path":  m.path,
				"error": err.Error(),
			})
		}
		return []Report{}, nil
	}

	var reports []Report
	if err := json.Unmarshal(data, &reports); err != nil {
		telemetry.Warn("storage.corrupt_file", map[string]any{
			"path":  m.path,
			"error": err.Error(),
		})
		return []Report{}, nil
	}
	return reports, nil
}

// SaveAll overwrites the whole file, recreating the directory if absent.
func (m *FileMirror) SaveAll(ctx context.Context, reports []Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal reports: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", m.path, err)
	}
	return nil
}

var _ Mirror = (*FileMirror)(nil)
