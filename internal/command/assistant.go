package command

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/obairak/contact-assistant/internal/config"
	"github.com/obairak/contact-assistant/internal/contacts"
)

// Assistant turns command lines into address book operations. It owns the
// dispatch table and the error-to-reply rendering; the REPL around it only
// reads lines and prints replies.
type Assistant struct {
	book     *contacts.AddressBook
	clock    Clock
	handlers map[string]HandlerFunc
}

// NewAssistant wires the command table around the given book. The clock
// decides what "today" means for the birthdays query and calendar export.
func NewAssistant(book *contacts.AddressBook, clock Clock) *Assistant {
	a := &Assistant{book: book, clock: clock}
	a.handlers = map[string]HandlerFunc{
		config.CmdHello: handleHello,
		config.CmdAdd: withArgs([]string{config.ArgName, config.ArgPhone},
			requireNewContact(handleAdd)),
		config.CmdChange: withArgs([]string{config.ArgName, config.ArgPhone, config.ArgNewPhone},
			requireContact(handleChange)),
		config.CmdPhone: withArgs([]string{config.ArgName},
			requireContact(handlePhone)),
		config.CmdAll: handleAll,
		config.CmdAddBirthday: withArgs([]string{config.ArgName, config.ArgBirthday},
			requireContact(handleAddBirthday)),
		config.CmdShowBirthday: withArgs([]string{config.ArgName},
			requireContact(handleShowBirthday)),
		config.CmdBirthdays: a.handleBirthdays,
		config.CmdDelete: withArgs([]string{config.ArgName},
			requireContact(handleDelete)),
		config.CmdRemovePhone: withArgs([]string{config.ArgName, config.ArgPhone},
			requireContact(handleRemovePhone)),
		config.CmdImport: withArgs([]string{config.ArgFile}, handleImport),
		config.CmdExport: withArgs([]string{config.ArgFile}, a.handleExport),
		config.CmdHelp:   handleHelp,
	}
	return a
}

// Execute runs a single command line against the book and returns the
// reply. done reports that the user asked to leave the assistant.
func (a *Assistant) Execute(line string) (reply string, done bool) {
	cmd, args := parseInput(line)
	if cmd == "" {
		return "", false
	}

	switch cmd {
	case config.CmdClose, config.CmdExit:
		return config.MsgGoodbye, true
	}

	log := slog.With(config.LogKeyComponent, config.CompAssistant)

	handler, ok := a.handlers[cmd]
	if !ok {
		log.Debug(config.MsgCmdUnknown, config.LogKeyCommand, cmd)
		return config.MsgInvalidCommand, false
	}

	reply, err := handler(args, a.book)
	if err != nil {
		log.Debug(config.MsgCmdFailed,
			config.LogKeyCommand, cmd,
			config.LogKeyError, err,
		)
		return renderError(err), false
	}
	return reply, false
}

// parseInput splits a line into the lowercase command word and its
// arguments. Argument casing is preserved: names are case sensitive.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// renderError maps a handler failure onto the reply the user sees.
// Missing arguments get the naming treatment; every other error in the
// taxonomy already carries its user-facing wording.
func renderError(err error) string {
	var inputErr *contacts.InputRequiredError
	if errors.As(err, &inputErr) {
		if inputErr.Arg == "" {
			return config.MsgEnterArgument
		}
		return fmt.Sprintf(config.FormatEnterArgument, inputErr.Arg)
	}
	return err.Error()
}
