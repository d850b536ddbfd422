package exchange_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obairak/contact-assistant/internal/config"
	"github.com/obairak/contact-assistant/internal/contacts"
	"github.com/obairak/contact-assistant/internal/exchange"
)

func TestBuildCalendar_Events(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	items := []contacts.Congratulation{
		{Name: "Ann", Date: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
		{Name: "Bob", Date: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)},
	}

	data, err := exchange.BuildCalendar(items, now)
	require.NoError(t, err)

	icsStr := string(data)
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR")
	assert.Contains(t, icsStr, "PRODID:"+config.ICalProdid)
	assert.Equal(t, 2, strings.Count(icsStr, "BEGIN:VEVENT"), "one event per congratulation")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Ann")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Bob")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20240612")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20240617", "the exported date is the corrected one")
}

func TestBuildCalendar_Empty(t *testing.T) {
	data, err := exchange.BuildCalendar(nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data), "empty input still yields a valid calendar")
}

func TestBuildCalendar_DeterministicUIDs(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	items := []contacts.Congratulation{
		{Name: "Ann", Date: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
		{Name: "Bob", Date: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
	}

	first, err := exchange.BuildCalendar(items, now)
	require.NoError(t, err)
	second, err := exchange.BuildCalendar(items, now)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "re-exporting must not shuffle identifiers")

	uids := map[string]bool{}
	for _, line := range strings.Split(string(first), "\r\n") {
		if strings.HasPrefix(line, "UID:") {
			uids[line] = true
		}
	}
	assert.Len(t, uids, 2, "different people on the same date get distinct UIDs")
}

func TestWriteCalendarFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "birthdays.ics")
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	items := []contacts.Congratulation{
		{Name: "Ann", Date: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
	}

	require.NoError(t, exchange.WriteCalendarFile(path, items, now))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUMMARY:Birthday: Ann")
}

func TestWriteCalendarFile_BadPath(t *testing.T) {
	err := exchange.WriteCalendarFile("/no/such/dir/birthdays.ics", nil, time.Now())
	assert.Error(t, err)
}
