package contacts

import (
	"time"

	"github.com/obairak/contact-assistant/internal/config"
)

// Congratulation pairs a contact name with the date to congratulate them:
// the birthday anchored to the current year, moved to Monday when it
// lands on a weekend.
type Congratulation struct {
	Name string
	Date time.Time
}

// UpcomingBirthdays returns a congratulation entry for every contact whose
// birthday falls within the next week, today inclusive. Records without a
// birthday are skipped. The result follows the book's insertion order.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []Congratulation {
	loc := today.Location()
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, config.UpcomingWindowDays)

	var result []Congratulation
	for _, record := range b.Records() {
		birthday, ok := record.Birthday()
		if !ok {
			continue
		}

		// Anchor the birthday to the current year. Go's time.Date
		// normalizes Feb 29 to March 1 when the year is not a leap year.
		born := birthday.Date()
		date := time.Date(from.Year(), born.Month(), born.Day(), 0, 0, 0, 0, loc)

		if date.Before(from) || date.After(to) {
			continue
		}

		// Weekend birthdays are congratulated on the following Monday:
		// Sunday moves one day, Saturday two.
		if iso := isoWeekday(date); iso > config.WorkingDays {
			shift := 2
			if iso-config.WorkingDays == 2 {
				shift = 1
			}
			date = date.AddDate(0, 0, shift)
		}

		result = append(result, Congratulation{Name: record.Name(), Date: date})
	}
	return result
}

// isoWeekday numbers days Monday=1 through Sunday=7.
func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}
