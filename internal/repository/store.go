// Package repository persists the whole document as a single JSON
// file: read wholesale at startup, overwritten wholesale on every
// mutation. The design assumes one active process.
package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"kidtasks/internal/apperr"
	"kidtasks/internal/model"
)

// DefaultDataFile is the storage location relative to the working
// directory when none is configured.
const DefaultDataFile = "kid_tasks_data.json"

// FileStore loads and saves the document.
type FileStore struct {
	path string
	log  *logrus.Logger
}

func NewFileStore(path string, log *logrus.Logger) *FileStore {
	if path == "" {
		path = DefaultDataFile
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FileStore{path: path, log: log}
}

// Load reads the document from disk. A missing or unparseable file
// yields a fresh empty document instead of an error: a bad data file
// must never prevent startup, at the cost of discarding its contents
// on the next save.
func (s *FileStore) Load() *model.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("path", s.path).Warn("data file unreadable, starting empty")
		}
		return model.NewDocument()
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.WithError(err).WithField("path", s.path).Warn("data file corrupt, starting empty")
		return model.NewDocument()
	}
	if doc.Users == nil {
		doc.Users = map[string]*model.User{}
	}
	if doc.Settings.Theme == "" {
		doc.Settings.Theme = model.ThemeLight
	}
	return &doc
}

// Save serializes the full document and overwrites the storage
// location. There is no incremental write; the document is small.
func (s *FileStore) Save(doc *model.Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode document: %v", apperr.ErrPersistence, err)
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create data dir %q: %v", apperr.ErrPersistence, dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", apperr.ErrPersistence, s.path, err)
	}
	return nil
}
