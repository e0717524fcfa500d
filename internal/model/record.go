package model

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrEmptyContent is returned when a record would have no text.
	ErrEmptyContent = errors.New("empty content")
	// ErrAlreadyChecked is returned when checking a completed record.
	ErrAlreadyChecked = errors.New("already checked")
)

// Record is one to-do entry.
// The field names are the on-disk keys; keep them stable.
type Record struct {
	CreateTime time.Time  `json:"create_time"`
	CheckTime  *time.Time `json:"check_time"`
	Content    string     `json:"content"`
}

// New builds an unchecked record created at now.
func New(content string, now time.Time) (*Record, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	return &Record{CreateTime: now, Content: content}, nil
}

// Checked reports whether the record has been completed.
func (r *Record) Checked() bool { return r.CheckTime != nil }

// Check marks the record completed at now. A record is checked at most once;
// later calls return ErrAlreadyChecked and leave CheckTime alone.
func (r *Record) Check(now time.Time) error {
	if r.Checked() {
		return ErrAlreadyChecked
	}
	// CheckTime never precedes CreateTime, even if the clock went backwards.
	if now.Before(r.CreateTime) {
		now = r.CreateTime
	}
	r.CheckTime = &now
	return nil
}
