package command

import (
	"github.com/obairak/contact-assistant/internal/config"
	"github.com/obairak/contact-assistant/internal/contacts"
)

// HandlerFunc executes one assistant command against the book and returns
// the reply for the user. Errors are rendered by the dispatcher, so
// handlers never format failure messages themselves.
type HandlerFunc func(args []string, book *contacts.AddressBook) (string, error)

// withArgs rejects calls that are missing arguments before the handler
// runs. names lists the required arguments in order; the first absent or
// empty one is reported back by name.
func withArgs(names []string, next HandlerFunc) HandlerFunc {
	return func(args []string, book *contacts.AddressBook) (string, error) {
		for i, name := range names {
			if i >= len(args) || args[i] == "" {
				return "", &contacts.InputRequiredError{Arg: name}
			}
		}
		return next(args, book)
	}
}

// requireContact replies early when args[0] names no known contact.
// Must run inside withArgs so args[0] is guaranteed to exist.
func requireContact(next HandlerFunc) HandlerFunc {
	return func(args []string, book *contacts.AddressBook) (string, error) {
		if _, ok := book.Find(args[0]); !ok {
			return config.MsgContactNotFound, nil
		}
		return next(args, book)
	}
}

// requireNewContact replies early when args[0] already names a contact.
func requireNewContact(next HandlerFunc) HandlerFunc {
	return func(args []string, book *contacts.AddressBook) (string, error) {
		if _, ok := book.Find(args[0]); ok {
			return config.MsgContactExists, nil
		}
		return next(args, book)
	}
}
