package command

import (
	"fmt"
	"strings"

	"github.com/obairak/contact-assistant/internal/config"
	"github.com/obairak/contact-assistant/internal/contacts"
	"github.com/obairak/contact-assistant/internal/exchange"
)

func handleHello(_ []string, _ *contacts.AddressBook) (string, error) {
	return config.MsgHello, nil
}

// handleAdd creates a record with one phone. The requireNewContact wrapper
// has already ruled out duplicates, and a rejected phone means no record
// is stored at all.
func handleAdd(args []string, book *contacts.AddressBook) (string, error) {
	record := contacts.NewRecord(args[0])
	if err := record.PutPhone(args[1]); err != nil {
		return "", err
	}
	book.AddRecord(record)
	return config.MsgContactAdded, nil
}

// handleChange swaps one stored phone for a new value. Asking to change a
// number the contact does not have is a silent no-op.
func handleChange(args []string, book *contacts.AddressBook) (string, error) {
	record, _ := book.Find(args[0])
	if err := record.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return config.MsgContactUpdated, nil
}

func handlePhone(args []string, book *contacts.AddressBook) (string, error) {
	record, _ := book.Find(args[0])
	return strings.Join(record.Phones(), config.PhoneSeparator), nil
}

func handleAll(_ []string, book *contacts.AddressBook) (string, error) {
	records := book.Records()
	if len(records) == 0 {
		return config.MsgNoContacts, nil
	}
	lines := make([]string, 0, len(records))
	for _, record := range records {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n"), nil
}

func handleAddBirthday(args []string, book *contacts.AddressBook) (string, error) {
	record, _ := book.Find(args[0])
	if err := record.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return config.MsgBirthdayAdded, nil
}

func handleShowBirthday(args []string, book *contacts.AddressBook) (string, error) {
	record, _ := book.Find(args[0])
	birthday, ok := record.Birthday()
	if !ok {
		return config.MsgNoBirthday, nil
	}
	return birthday.Value(), nil
}

// handleBirthdays lists who to congratulate during the coming week, one
// line per contact with the (weekend-corrected) congratulation date.
func (a *Assistant) handleBirthdays(_ []string, book *contacts.AddressBook) (string, error) {
	upcoming := book.UpcomingBirthdays(a.clock.Now())
	if len(upcoming) == 0 {
		return config.MsgNoUpcoming, nil
	}
	lines := make([]string, 0, len(upcoming))
	for _, c := range upcoming {
		lines = append(lines, fmt.Sprintf(config.FormatCongratsLine,
			c.Name, c.Date.Format(config.DateFormatDisplay)))
	}
	return strings.Join(lines, "\n"), nil
}

func handleDelete(args []string, book *contacts.AddressBook) (string, error) {
	book.Delete(args[0])
	return config.MsgContactDeleted, nil
}

func handleRemovePhone(args []string, book *contacts.AddressBook) (string, error) {
	record, _ := book.Find(args[0])
	record.RemovePhone(args[1])
	return config.MsgPhoneRemoved, nil
}

func handleImport(args []string, book *contacts.AddressBook) (string, error) {
	stats, err := exchange.ImportFile(args[0], book)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(config.FormatImported, stats.Imported), nil
}

func (a *Assistant) handleExport(args []string, book *contacts.AddressBook) (string, error) {
	now := a.clock.Now()
	if err := exchange.WriteCalendarFile(args[0], book.UpcomingBirthdays(now), now); err != nil {
		return "", err
	}
	return fmt.Sprintf(config.FormatExported, args[0]), nil
}

func handleHelp(_ []string, _ *contacts.AddressBook) (string, error) {
	return config.HelpText, nil
}
