package ui

import (
	"fmt"

	"github.com/idilsaglam/today/internal/model"
)

const maxContentWidth = 80

// RecordLine renders one record: status box, 1-based index, content.
func (t Theme) RecordLine(r *model.Record, i int) string {
	box, boxStyle, text := t.BoxUnchecked, t.Muted, Truncate(r.Content, maxContentWidth)
	if r.Checked() {
		box, boxStyle = t.BoxChecked, t.Success
		text = t.Done.Render(text)
	}
	return fmt.Sprintf("%s %s %s", boxStyle.Render(box), t.Muted.Render(fmt.Sprintf("%2d.", i+1)), text)
}

// Stats counts checked and open records.
func Stats(records []*model.Record) (done, pending int) {
	for _, r := range records {
		if r.Checked() {
			done++
		} else {
			pending++
		}
	}
	return
}

// Header is the title line with live counts.
func (t Theme) Header(title string, records []*model.Record) string {
	d, p := Stats(records)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(title),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(records),
	)
}

// ViewLines builds the body of a list view.
func (t Theme) ViewLines(title string, records []*model.Record) []string {
	d, _ := Stats(records)
	lines := []string{
		t.Header(title, records),
		t.Muted.Render(ProgressBar(d, len(records), 28)),
		"",
	}
	if len(records) == 0 {
		lines = append(lines, t.Muted.Render("no items"))
	}
	for i, r := range records {
		lines = append(lines, t.RecordLine(r, i))
	}
	lines = append(lines, "", t.Muted.Render("Tip: add with `todo add \"Buy milk\"`, finish with `todo check 1`"))
	return lines
}

// View prints records framed in a panel.
func (p *Printer) View(title string, records []*model.Record) {
	p.Panel(p.Theme.ViewLines(title, records))
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	if n <= 3 {
		return string(rs[:n])
	}
	return string(rs[:n-3]) + "..."
}
