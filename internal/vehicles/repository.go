package vehicles

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/richxcame/fleet-management/pkg/logger"
	"go.uber.org/zap"
)

// FileRepository persists the fleet as a single JSON array on disk. Every
// write replaces the whole file; a sibling seed file backs the dev reset.
type FileRepository struct {
	dataPath string
	seedPath string
}

// NewFileRepository creates a file-backed vehicle repository
func NewFileRepository(dataPath, seedPath string) *FileRepository {
	return &FileRepository{dataPath: dataPath, seedPath: seedPath}
}

// ReadAll loads the full vehicle collection. A missing, unreadable or
// corrupt data file degrades to an empty fleet rather than failing the
// request; the problem is logged and the next successful write repairs
// the file.
func (r *FileRepository) ReadAll(ctx context.Context) ([]Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.dataPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Error("Failed to read vehicle data", zap.String("path", r.dataPath), zap.Error(err))
		}
		return []Vehicle{}, nil
	}

	var fleet []Vehicle
	if err := json.Unmarshal(raw, &fleet); err != nil {
		logger.Error("Failed to parse vehicle data", zap.String("path", r.dataPath), zap.Error(err))
		return []Vehicle{}, nil
	}
	if fleet == nil {
		fleet = []Vehicle{}
	}
	return fleet, nil
}

// WriteAll replaces the persisted collection wholesale. The new content
// goes to a temp file first and is renamed into place so readers never
// see a half-written array.
func (r *FileRepository) WriteAll(ctx context.Context, fleet []Vehicle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if fleet == nil {
		fleet = []Vehicle{}
	}
	data, err := json.MarshalIndent(fleet, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.dataPath), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.dataPath), "vehicles-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, r.dataPath); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// ResetFromSeed replaces the data file with the seed snapshot
func (r *FileRepository) ResetFromSeed(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	seed, err := os.ReadFile(r.seedPath)
	if err != nil {
		return err
	}

	var fleet []Vehicle
	if err := json.Unmarshal(seed, &fleet); err != nil {
		return err
	}
	return r.WriteAll(ctx, fleet)
}

// Ping reports whether the data directory is usable; wired into the
// readiness probe.
func (r *FileRepository) Ping() error {
	_, err := os.Stat(filepath.Dir(r.dataPath))
	return err
}
