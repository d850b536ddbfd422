package contacts

import (
	"fmt"

	"github.com/obairak/contact-assistant/internal/config"
)

// The package exposes a closed set of error types so callers can react
// with errors.As instead of matching message strings.

// InputRequiredError reports a command invoked without a required argument.
// Arg names the missing argument; it may be empty when the name is unknown.
type InputRequiredError struct {
	Arg string
}

func (e *InputRequiredError) Error() string {
	if e.Arg == "" {
		return "missing argument"
	}
	return fmt.Sprintf("missing argument: %s", e.Arg)
}

// PhoneInvalidError reports a value that is not exactly ten decimal digits.
type PhoneInvalidError struct {
	Value string
}

func (e *PhoneInvalidError) Error() string {
	return fmt.Sprintf(config.FormatPhoneInvalid, e.Value)
}

// BirthdayInvalidError reports a birthday that does not parse as DD.MM.YYYY.
// The message is fixed; it doubles as the user-facing reply.
type BirthdayInvalidError struct{}

func (e *BirthdayInvalidError) Error() string {
	return config.ErrMsgBirthdayFormat
}
