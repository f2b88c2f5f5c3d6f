package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"portfolioData/internal/models"

	"go.uber.org/zap"
)

const (
	DefaultOutput = "data.json"
	AssetsDir     = "assets"
)

type Service struct {
	baseDir string
	logger  *zap.Logger
}

// NewService roots all relative paths at baseDir.
func NewService(baseDir string, logger *zap.Logger) *Service {
	if baseDir == "" {
		baseDir = "."
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{baseDir: baseDir, logger: logger}
}

func (s *Service) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.baseDir, path)
}

// Persist creates the assets placeholder directory and overwrites path with
// the records as an indented JSON array.
func (s *Service) Persist(records []models.Record, path string) (string, error) {
	if err := os.MkdirAll(s.resolve(AssetsDir), 0755); err != nil {
		return "", fmt.Errorf("failed to create assets directory: %w", err)
	}

	data, err := MarshalJSON(records)
	if err != nil {
		return "", err
	}

	target := s.resolve(path)
	if err := os.WriteFile(target, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}

	s.logger.Debug("Wrote dataset", zap.String("path", target), zap.Int("records", len(records)))
	return target, nil
}

// MarshalJSON renders records with two-space indentation. HTML characters
// such as "&" are written literally.
func MarshalJSON(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Load reads a data file in any supported format, chosen by extension.
func (s *Service) Load(path string) ([]models.Record, error) {
	target := s.resolve(path)
	format, err := FormatFromPath(target)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}

	records, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", target, err)
	}
	return records, nil
}

// Export writes records to outputDir as data_<timestamp>.<ext>. A partial
// file is removed on failure.
func (s *Service) Export(records []models.Record, outputDir string, format Format) (string, error) {
	if !format.Valid() {
		return "", fmt.Errorf("invalid format: %s", format)
	}

	dir := s.resolve(outputDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	file, target, err := createExportFile(dir, time.Now().Format("20060102_150405"), format.Extension())
	if err != nil {
		return "", err
	}

	if err := Encode(file, records, format); err != nil {
		file.Close()
		os.Remove(target)
		return "", fmt.Errorf("export failed: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	s.logger.Info("Exported dataset",
		zap.String("path", target),
		zap.String("format", string(format)),
		zap.Int("records", len(records)))
	return target, nil
}

// createExportFile creates data_<timestamp>.<ext> in dir, adding a _N
// suffix when that name is already taken. Existing exports are never
// overwritten.
func createExportFile(dir, timestamp, ext string) (*os.File, string, error) {
	for n := 0; n < 1000; n++ {
		name := fmt.Sprintf("data_%s.%s", timestamp, ext)
		if n > 0 {
			name = fmt.Sprintf("data_%s_%d.%s", timestamp, n, ext)
		}
		target := filepath.Join(dir, name)

		file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("failed to create export file: %w", err)
		}
		return file, target, nil
	}
	return nil, "", fmt.Errorf("failed to create export file: too many exports for %s", timestamp)
}

func (s *Service) ValidateFile(filename string) error {
	target := s.resolve(filename)
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("cannot get file info: %w", err)
	}

	if info.Size() == 0 {
		return fmt.Errorf("data file is empty")
	}

	if _, err := FormatFromPath(target); err != nil {
		return err
	}
	return nil
}
