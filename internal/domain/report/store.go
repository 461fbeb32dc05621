// Package report stores diagnosis entries as one append-only text file per
// patient and scans those files for keywords.
package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const fileExt = ".txt"

// Store defines the contract for patient report storage.
type Store interface {
	AddReport(patient, diagnosis, doctor, prescription string) (Entry, error)
	Append(patient string, e Entry) error
	ReadReport(patient string) (string, bool, error)
	Entries(patient string) ([]Entry, bool, error)
	Search(patient, keyword string) ([]Match, bool, error)
	Patients() ([]string, error)
}

// FileStore keeps each patient's entries in <dir>/<patient>.txt. Files are
// opened and closed on every call; nothing is cached between calls.
type FileStore struct {
	dir    string
	now    func() time.Time
	logger zerolog.Logger
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithClock overrides the clock used to date new entries.
func WithClock(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *FileStore) { s.logger = logger }
}

// NewFileStore returns a FileStore rooted at dir. The directory is created
// lazily on the first append.
func NewFileStore(dir string, opts ...Option) *FileStore {
	s := &FileStore{
		dir:    dir,
		now:    time.Now,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the reports directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file backing a patient's reports.
func (s *FileStore) Path(patient string) (string, error) {
	if err := ValidatePatientName(patient); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, patient+fileExt), nil
}

// AddReport dates a new entry with today's date and appends it.
func (s *FileStore) AddReport(patient, diagnosis, doctor, prescription string) (Entry, error) {
	e := Entry{
		Date:         s.now().Format(DateLayout),
		Doctor:       doctor,
		Diagnosis:    diagnosis,
		Prescription: prescription,
	}
	if err := s.Append(patient, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Append writes e to the end of the patient's file, creating the directory
// and file when missing.
func (s *FileStore) Append(patient string, e Entry) error {
	path, err := s.Path(patient)
	if err != nil {
		return err
	}
	if err := e.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error().Err(err).Str("dir", s.dir).Msg("create reports directory")
		return fmt.Errorf("%w: create directory %s: %v", ErrStorageUnavailable, s.dir, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("open report file")
		return fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, path, err)
	}

	if _, err := f.WriteString(e.Format()); err != nil {
		f.Close()
		s.logger.Error().Err(err).Str("path", path).Msg("write report entry")
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrStorageUnavailable, path, err)
	}

	s.logger.Debug().Str("patient", patient).Str("date", e.Date).Msg("report appended")
	return nil
}

// ReadReport returns the full text of the patient's file. found is false,
// with a nil error, when the patient has no file yet.
func (s *FileStore) ReadReport(patient string) (string, bool, error) {
	path, err := s.Path(patient)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("read report file")
		return "", false, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, path, err)
	}

	s.logger.Debug().Str("patient", patient).Int("bytes", len(data)).Msg("report read")
	return string(data), true, nil
}

// Entries parses the patient's file into entries, oldest first.
func (s *FileStore) Entries(patient string) ([]Entry, bool, error) {
	text, found, err := s.ReadReport(patient)
	if err != nil || !found {
		return nil, found, err
	}
	return ParseEntries(text), true, nil
}

// Patients lists, in name order, every patient with a report file.
func (s *FileStore) Patients() ([]string, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrStorageUnavailable, s.dir, err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(de.Name(), fileExt))
	}
	sort.Strings(names)
	return names, nil
}
