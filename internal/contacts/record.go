package contacts

import (
	"fmt"
	"strings"

	"github.com/obairak/contact-assistant/internal/config"
)

// Record groups everything stored about one person: the immutable name,
// an ordered list of phones without duplicates, and an optional birthday.
type Record struct {
	name     Name
	phones   []*Phone
	birthday *Birthday
}

// NewRecord creates an empty record for the given name.
func NewRecord(name string) *Record {
	return &Record{name: NewName(name)}
}

// Name returns the record's display name.
func (r *Record) Name() string {
	return r.name.Value()
}

// Phones returns the phone values in insertion order.
func (r *Record) Phones() []string {
	values := make([]string, 0, len(r.phones))
	for _, p := range r.phones {
		values = append(values, p.Value())
	}
	return values
}

// PutPhone appends a validated phone. Adding a number the record already
// holds is a no-op, so the list never contains duplicates.
func (r *Record) PutPhone(value string) error {
	if _, ok := r.FindPhone(value); ok {
		return nil
	}
	phone, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// EditPhone updates the phone currently storing current to updated,
// keeping its position. When current is not present nothing happens.
func (r *Record) EditPhone(current, updated string) error {
	phone, ok := r.FindPhone(current)
	if !ok {
		return nil
	}
	return phone.Update(updated)
}

// FindPhone looks a phone up by its exact string value.
func (r *Record) FindPhone(value string) (*Phone, bool) {
	for _, p := range r.phones {
		if p.Value() == value {
			return p, true
		}
	}
	return nil, false
}

// RemovePhone drops the phone with the given value, if present.
func (r *Record) RemovePhone(value string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.Value() != value {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// AddBirthday sets or replaces the birthday. On a validation failure the
// previously stored birthday survives.
func (r *Record) AddBirthday(value string) error {
	birthday, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = birthday
	return nil
}

// Birthday returns the stored birthday and whether one is set.
func (r *Record) Birthday() (*Birthday, bool) {
	if r.birthday == nil {
		return nil, false
	}
	return r.birthday, true
}

func (r *Record) String() string {
	birthday := config.BirthdayPlaceholder
	if r.birthday != nil {
		birthday = r.birthday.Value()
	}
	return fmt.Sprintf(config.FormatRecord,
		r.name.Value(),
		strings.Join(r.Phones(), config.PhoneSeparator),
		birthday,
	)
}
