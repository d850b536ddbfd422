package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/obairak/contact-assistant/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"AppCommand", config.AppCommand},
		{"Version", config.Version},
		{"BirthdayLayout", config.BirthdayLayout},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"StubVCalendar", config.StubVCalendar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that business rule values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 10, config.PhoneNumberLength, "Phone numbers are fixed at ten digits")
	assert.Equal(t, 7, config.UpcomingWindowDays, "Birthdays query looks one week ahead")
	assert.Equal(t, 5, config.WorkingDays, "ISO weekdays above 5 are weekend days")
}

// TestBirthdayLayout_RoundTrip verifies the layout parses and renders DD.MM.YYYY.
func TestBirthdayLayout_RoundTrip(t *testing.T) {
	parsed, err := time.Parse(config.BirthdayLayout, "31.12.2000")
	assert.NoError(t, err)
	assert.Equal(t, time.December, parsed.Month())
	assert.Equal(t, "31.12.2000", parsed.Format(config.BirthdayLayout))
}

// TestStubVCalendar_Validity ensures the empty-calendar stub stays a valid object.
func TestStubVCalendar_Validity(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.StubVCalendar, "BEGIN:VCALENDAR"))
	assert.True(t, strings.HasSuffix(config.StubVCalendar, "END:VCALENDAR\r\n"))
	assert.Contains(t, config.StubVCalendar, config.ICalProdid)
}
