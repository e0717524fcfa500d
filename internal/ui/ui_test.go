package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/today/internal/model"
)

func plainPrinter(theme string) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errw bytes.Buffer
	return NewPrinter(&out, &errw, theme, false), &out, &errw
}

func record(t *testing.T, content string, checked bool) *model.Record {
	t.Helper()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	r, err := model.New(content, now)
	require.NoError(t, err)
	if checked {
		require.NoError(t, r.Check(now.Add(time.Minute)))
	}
	return r
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{done: 0, total: 0, width: 10, want: "░░░░░░░░░░   0%"},
		{done: 1, total: 2, width: 10, want: "█████░░░░░  50%"},
		{done: 3, total: 3, width: 5, want: "█████ 100%"},
		{done: 1, total: 4, width: 2, want: "█░░░░  25%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressBar(tt.done, tt.total, tt.width))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ünï...", Truncate("ünïcödé text", 6))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

func TestRecordLine(t *testing.T) {
	tests := []struct {
		theme   string
		checked bool
		want    string
	}{
		{theme: "classic", checked: false, want: "☐  1. buy milk"},
		{theme: "classic", checked: true, want: "☑  1. buy milk"},
		{theme: "neon", checked: true, want: "◼  1. buy milk"},
		{theme: "mono", checked: false, want: "[ ]  1. buy milk"},
		{theme: "mono", checked: true, want: "[x]  1. buy milk"},
	}
	for _, tt := range tests {
		p, _, _ := plainPrinter(tt.theme)
		got := p.Theme.RecordLine(record(t, "buy milk", tt.checked), 0)
		assert.Equal(t, tt.want, got, "%s checked=%v", tt.theme, tt.checked)
	}
}

func TestView(t *testing.T) {
	p, out, _ := plainPrinter("classic")
	p.View("Today", []*model.Record{
		record(t, "buy milk", true),
		record(t, "call mom", false),
	})

	s := out.String()
	assert.Contains(t, s, "Today  ✔ 1  • 1  Total 2")
	assert.Contains(t, s, "☑  1. buy milk")
	assert.Contains(t, s, "☐  2. call mom")
	assert.Contains(t, s, " 50%")
	assert.True(t, strings.HasPrefix(s, "┌"), "framed output, got %q", s)
}

func TestViewEmpty(t *testing.T) {
	p, out, _ := plainPrinter("mono")
	p.View("Today", nil)

	s := out.String()
	assert.Contains(t, s, "no items")
	assert.True(t, strings.HasPrefix(s, "+"), "ascii frame, got %q", s)
}

func TestMessages(t *testing.T) {
	p, out, errw := plainPrinter("classic")
	p.OK("added")
	p.Fail("index out of range")
	p.Warn("already checked")

	assert.Equal(t, "✔ added\n", out.String())
	assert.Contains(t, errw.String(), "✖ index out of range\n")
	assert.Contains(t, errw.String(), "! already checked\n")
}
