package digest

import (
	"Go2FlowDigest/internal/model"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TimestampLayout is the generation timestamp embedded in digest file
// names. Every sink of the same run shares one formatted timestamp.
const TimestampLayout = "20060102_150405"

// FileWriter persists a digest document as pretty-printed JSON at
// <output_dir>/<prefix>_<timestamp>.json. It is the primary sink of every
// run and implements the model.Writer interface.
type FileWriter struct {
	outputDir string
	prefix    string
}

// NewFileWriter creates a writer rooted at outputDir.
func NewFileWriter(outputDir, prefix string) *FileWriter {
	return &FileWriter{outputDir: outputDir, prefix: prefix}
}

// Path returns the output path for a given generation timestamp.
func (w *FileWriter) Path(timestamp string) string {
	return filepath.Join(w.outputDir, fmt.Sprintf("%s_%s.json", w.prefix, timestamp))
}

// Write creates the output directory if needed and writes the document.
func (w *FileWriter) Write(d *model.Digest, timestamp string) error {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := w.Path(timestamp)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create digest file '%s': %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("failed to encode digest to json: %w", err)
	}

	return nil
}
