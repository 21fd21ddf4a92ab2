package logfile

import (
	"bufio"
	"os"
	"path/filepath"
)

// maxLineBytes bounds a single log line. Lines beyond this surface as a
// read error on the file rather than silently truncated data.
const maxLineBytes = 1 << 20

// ListFiles returns the paths of the regular files directly under dir, in
// lexical order. Subdirectories are not descended into.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// Reader reads a log file line by line.
type Reader struct {
	file    *os.File
	scanner *bufio.Scanner
}

// NewReader opens the given file for line-oriented reading.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &Reader{file: file, scanner: scanner}, nil
}

// Close closes the underlying file.
func (r *Reader) Close() {
	r.file.Close()
}

// ReadLines calls fn for every line in the file, in file order, without
// the trailing newline. It returns the first read error encountered;
// lines already delivered to fn stay delivered.
func (r *Reader) ReadLines(fn func(line string)) error {
	for r.scanner.Scan() {
		fn(r.scanner.Text())
	}
	return r.scanner.Err()
}
