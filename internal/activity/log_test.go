package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 9, 30, 15, 0, time.UTC)
}

func TestAddfAndString(t *testing.T) {
	l := New(nil)
	l.now = fixedClock

	assert.Equal(t, "No activity yet.\n", l.String())

	l.Addf("Deleted %d rows", 2)
	l.Addf("Archived %d rows", 1)

	assert.Equal(t, []string{"09:30:15  Deleted 2 rows", "09:30:15  Archived 1 rows"}, l.Lines())
	assert.Equal(t, "09:30:15  Archived 1 rows\n09:30:15  Deleted 2 rows\n", l.String())
}

func TestLimitDropsOldest(t *testing.T) {
	l := New(nil)
	l.now = fixedClock
	l.limit = 2

	l.Addf("one")
	l.Addf("two")
	l.Addf("three")

	assert.Equal(t, []string{"09:30:15  two", "09:30:15  three"}, l.Lines())
}

func TestMarkdown(t *testing.T) {
	l := New(nil)
	l.now = fixedClock

	assert.Equal(t, "# Activity\n\n_No activity yet._\n", l.Markdown("Activity"))

	l.Addf("Deleted %d rows", 2)
	l.Addf("Edit: 1 rows [3]")
	assert.Equal(t,
		"# Activity\n\n- `09:30:15` Edit: 1 rows [3]\n- `09:30:15` Deleted 2 rows\n",
		l.Markdown("Activity"))
}
