// Package output prints per-entry results and summaries for directory
// listings and file operations.
package output

import (
	"fmt"
	"time"

	"github.com/tympanix/dirkit/internal/dirscan"
	"github.com/tympanix/dirkit/internal/util"
)

// Tracker accumulates results for one operation and prints a closing summary.
type Tracker struct {
	action    string
	startTime time.Time
	entries   int
	failed    int
	bytes     int64
	logger    util.Logger
	quietMode bool
}

// NewTracker starts tracking an operation. action is the past-tense verb used
// in the summary ("listed", "copied", "archived").
func NewTracker(action string, logger util.Logger, quietMode bool) *Tracker {
	return &Tracker{
		action:    action,
		startTime: time.Now(),
		logger:    logger,
		quietMode: quietMode,
	}
}

// Record counts one processed entry and its byte size.
func (t *Tracker) Record(size int64) {
	t.entries++
	t.bytes += size
}

// RecordFailure counts one failed entry.
func (t *Tracker) RecordFailure(path string, err error) {
	t.failed++
	if !t.quietMode {
		t.logger.Printf("✗ %s: %v\n", path, err)
	}
}

// PrintSummary prints the closing line for the operation.
func (t *Tracker) PrintSummary() {
	if t.quietMode {
		return
	}
	elapsed := time.Since(t.startTime)
	summary := fmt.Sprintf("Entries %s: %d", t.action, t.entries)
	if t.failed > 0 {
		summary += fmt.Sprintf(", failed: %d", t.failed)
	}
	if t.bytes > 0 {
		summary += fmt.Sprintf(", size: %s", FormatBytes(t.bytes))
	}
	summary += fmt.Sprintf(", time: %s", formatDuration(elapsed))
	t.logger.Println(summary)
}

// PrintEntry prints one directory entry, long form when requested. Unknown
// metadata (stat raced with a delete) prints as "?".
func PrintEntry(logger util.Logger, e dirscan.Entry, long bool) {
	if !long {
		logger.Println(e.Name)
		return
	}
	kind := "-"
	if e.Dir {
		kind = "d"
	}
	if e.Symlink {
		kind = "l"
	}
	size := "?"
	if e.Size != nil {
		size = FormatBytes(*e.Size)
	}
	mod := "?"
	if e.ModTime != nil {
		mod = e.ModTime.Format("2006-01-02 15:04")
	}
	hidden := " "
	if e.Hidden {
		hidden = "h"
	}
	logger.Printf("%s%s %10s  %16s  %s\n", kind, hidden, size, mod, e.Name)
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(10 * time.Millisecond).String()
}
