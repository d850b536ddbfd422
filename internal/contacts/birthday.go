package contacts

import (
	"time"

	"github.com/obairak/contact-assistant/internal/config"
)

// Birthday is a validated date of birth. The accepted form is the literal
// DD.MM.YYYY layout: two-digit day, two-digit month, four-digit year.
// Parsing is calendar-strict, so 30.02.2024 is rejected.
type Birthday struct {
	Field
	date time.Time
}

// NewBirthday parses the value and returns the birthday, or a
// BirthdayInvalidError for anything that does not fit the layout.
func NewBirthday(value string) (*Birthday, error) {
	date, err := time.Parse(config.BirthdayLayout, value)
	if err != nil {
		return nil, &BirthdayInvalidError{}
	}
	return &Birthday{Field: Field{value: value}, date: date}, nil
}

// Date returns the parsed calendar date.
func (b *Birthday) Date() time.Time {
	return b.date
}
