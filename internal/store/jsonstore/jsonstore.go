package jsonstore

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/today/internal/model"
)

// JSON Lines storage: one record per line, in insertion order.
// No locking; fine for a local single-user CLI. Two processes saving the same
// file at once means the last writer wins.

const (
	maxLineSize = 1 << 20

	// Windows wider than this already reach back thousands of years; larger
	// values would overflow the day arithmetic in windowStart.
	maxWindowDays = 1 << 20
)

// Store owns the records of one backing file for the life of a process.
type Store struct {
	path    string
	records []*model.Record
	now     func() time.Time
	log     *log.Logger
}

type Option func(*Store)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Open binds a store to path. Nothing is read until Load.
func Open(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		now:  time.Now,
		log:  log.New(io.Discard),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Path() string { return s.path }

// Records returns the whole collection in insertion order.
func (s *Store) Records() []*model.Record { return s.records }

// Load replaces the in-memory collection with the contents of the backing
// file. A missing file is created empty. Any undecodable line fails the whole
// load and leaves the collection untouched.
func (s *Store) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.bootstrap()
		}
		return &IOError{Op: "open file", Err: err}
	}
	defer f.Close()

	var records []*model.Record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		r, err := decodeRecord(b)
		if err != nil {
			return &CorruptError{Line: line, Err: err}
		}
		records = append(records, r)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return &CorruptError{Line: line + 1, Err: err}
		}
		return &IOError{Op: "read file", Err: err}
	}

	s.records = records
	s.log.Debug("loaded records", "path", s.path, "count", len(records))
	return nil
}

func (s *Store) bootstrap() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &IOError{Op: "create dir", Err: err}
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &IOError{Op: "create file", Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "create file", Err: err}
	}
	s.records = nil
	s.log.Debug("created empty data file", "path", s.path)
	return nil
}

func decodeRecord(b []byte) (*model.Record, error) {
	var r model.Record
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if r.CreateTime.IsZero() {
		return nil, errors.New("missing create_time")
	}
	if r.CheckTime != nil && r.CheckTime.Before(r.CreateTime) {
		return nil, errors.New("check_time before create_time")
	}
	return &r, nil
}

// Save rewrites the backing file with exactly the in-memory records.
// The new content goes to a temp file first and is renamed into place, so a
// failed save never leaves a truncated file behind.
func (s *Store) Save() error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for _, r := range s.records {
		if err := enc.Encode(r); err != nil {
			return &IOError{Op: "json encode", Err: err}
		}
	}
	if err := writeFileAtomic(s.path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	s.log.Debug("saved records", "path", s.path, "count", len(s.records))
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "create dir", Err: err}
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create temp file", Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return &IOError{Op: "write file", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &IOError{Op: "sync file", Err: err}
	}
	if err := tmp.Chmod(perm); err != nil {
		return &IOError{Op: "chmod file", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "close file", Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "rename file", Err: err}
	}
	return nil
}

// Insert appends r in memory. Call Save to persist it.
func (s *Store) Insert(r *model.Record) {
	s.records = append(s.records, r)
}

// Add creates a record from content at the store's current time and inserts it.
func (s *Store) Add(content string) (*model.Record, error) {
	r, err := model.New(content, s.now())
	if err != nil {
		return nil, err
	}
	s.Insert(r)
	return r, nil
}

// Windowed returns the records created within the last days calendar days,
// today counting as day one. A record created exactly at the window's opening
// midnight is not included.
func (s *Store) Windowed(days int) ([]*model.Record, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: days must be at least 1, got %d", ErrInvalidWindow, days)
	}
	if days > maxWindowDays {
		days = maxWindowDays
	}
	start := windowStart(s.now(), days)
	var out []*model.Record
	for _, r := range s.records {
		if r.CreateTime.After(start) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Today is Windowed(1).
func (s *Store) Today() []*model.Record {
	out, _ := s.Windowed(1)
	return out
}

// CheckAt completes the record at index in today's view, which is not the
// same as its position in the full collection.
func (s *Store) CheckAt(index int) (*model.Record, error) {
	today := s.Today()
	if index < 0 || index >= len(today) {
		return nil, &IndexError{Index: index, Len: len(today)}
	}
	r := today[index]
	if err := r.Check(s.now()); err != nil {
		return r, err
	}
	return r, nil
}

func windowStart(now time.Time, days int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d-(days-1), 0, 0, 0, 0, now.Location())
}
