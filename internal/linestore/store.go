// Package linestore persists record kinds as plain UTF-8 text files, one
// record per line. Every mutation is a full read-modify-rewrite of the file;
// cost is linear in record count, which is the accepted trade-off for the
// tiny stores this program keeps.
package linestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is a handle on a data directory. A single mutex serializes all
// read-modify-write cycles, so concurrent callers inside one process cannot
// interleave partial rewrites. External processes are not coordinated.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New returns a Store rooted at dir. The directory is created lazily on the
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// ReadLines returns the persisted lines of the named record file in order.
// A missing file is an empty store, not an error. Empty lines are dropped.
func (s *Store) ReadLines(name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readLines(filepath.Join(s.dir, name))
}

// WriteLines replaces the entire content of the named record file with the
// given lines.
func (s *Store) WriteLines(name string, lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLines(name, lines)
}

// Update runs fn over the current lines of the named record file and
// persists whatever it returns. The store lock is held for the whole cycle,
// making the read-modify-write atomic with respect to other Store callers.
func (s *Store) Update(name string, fn func(lines []string) ([]string, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := readLines(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	updated, err := fn(lines)
	if err != nil {
		return err
	}
	return s.writeLines(name, updated)
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// writeLines writes to a temp file in the same directory and renames it over
// the target, so readers never observe a half-written file.
func (s *Store) writeLines(name string, lines []string) error {
	if err := os.MkdirAll(s.dir, 0o770); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}
