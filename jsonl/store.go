// Package jsonl persists poem revision histories as JSONL files.
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stevenrichter16/mypoem"
)

// Compile-time interface verification.
var _ mypoem.RevisionStore = (*Store)(nil)

// maxLineSize is the maximum size for a single JSONL line (1MB).
// Generous for poem-length drafts while preventing memory issues.
const maxLineSize = 1 * 1024 * 1024

// Store persists and retrieves Revision records as JSONL, one revision per line.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads revisions from a JSONL file. Returns an empty history if the
// file doesn't exist.
func (s *Store) Load(path string) ([]mypoem.Revision, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var revisions []mypoem.Revision
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rev mypoem.Revision
		if err := json.Unmarshal([]byte(line), &rev); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		revisions = append(revisions, rev)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return revisions, nil
}

// Save writes revisions to a JSONL file, creating parent directories if needed.
func (s *Store) Save(path string, revisions []mypoem.Revision) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, rev := range revisions {
		data, err := json.Marshal(rev)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return err
		}
		if _, err := f.WriteString("\n"); err != nil {
			return err
		}
	}

	return nil
}
