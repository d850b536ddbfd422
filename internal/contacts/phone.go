package contacts

import "github.com/obairak/contact-assistant/internal/config"

// Phone is a validated phone number. The format is deliberately strict:
// exactly ten decimal digits, no separators, no country prefix.
type Phone struct {
	Field
}

// NewPhone validates the value and returns the phone, or a PhoneInvalidError.
func NewPhone(value string) (*Phone, error) {
	if err := validatePhone(value); err != nil {
		return nil, err
	}
	return &Phone{Field{value: value}}, nil
}

// Update replaces the stored number after validating the new value.
// On failure the previous value stays intact.
func (p *Phone) Update(value string) error {
	if err := validatePhone(value); err != nil {
		return err
	}
	p.value = value
	return nil
}

func validatePhone(value string) error {
	if len(value) != config.PhoneNumberLength {
		return &PhoneInvalidError{Value: value}
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return &PhoneInvalidError{Value: value}
		}
	}
	return nil
}
