package activity

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"seltable/internal/eventbus"
)

// Log keeps a timestamped record of bulk actions for the pager view
type Log struct {
	mu    sync.Mutex
	lines []string
	bus   eventbus.EventBus
	now   func() time.Time
	limit int
}

// DefaultLimit bounds the number of lines kept in memory
const DefaultLimit = 1000

// New creates an activity log. bus may be nil.
func New(bus eventbus.EventBus) *Log {
	return &Log{bus: bus, now: time.Now, limit: DefaultLimit}
}

// Addf appends a formatted line
func (l *Log) Addf(format string, args ...interface{}) {
	line := l.now().Format("15:04:05") + "  " + fmt.Sprintf(format, args...)

	l.mu.Lock()
	l.lines = append(l.lines, line)
	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = append([]string(nil), l.lines[over:]...)
	}
	l.mu.Unlock()

	if l.bus != nil {
		l.bus.Publish(eventbus.ActivityLoggedEvent{Line: line})
	}
}

// Lines returns a copy of the recorded lines, oldest first
func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// String renders the log, newest first, ready for a pager
func (l *Log) String() string {
	lines := l.Lines()
	if len(lines) == 0 {
		return "No activity yet.\n"
	}
	var b strings.Builder
	for i := len(lines) - 1; i >= 0; i-- {
		b.WriteString(lines[i])
		b.WriteByte('\n')
	}
	return b.String()
}

// Markdown renders the log as a markdown document, newest first
func (l *Log) Markdown(title string) string {
	lines := l.Lines()
	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	if len(lines) == 0 {
		b.WriteString("_No activity yet._\n")
		return b.String()
	}
	for i := len(lines) - 1; i >= 0; i-- {
		ts, text, ok := strings.Cut(lines[i], "  ")
		if !ok {
			b.WriteString("- " + lines[i] + "\n")
			continue
		}
		b.WriteString("- `" + ts + "` " + text + "\n")
	}
	return b.String()
}
