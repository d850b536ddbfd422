package exchange

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-vcard"

	"github.com/obairak/contact-assistant/internal/config"
	"github.com/obairak/contact-assistant/internal/contacts"
)

// ImportStats summarizes one vCard import run.
type ImportStats struct {
	Processed     int // cards decoded successfully
	Imported      int // records merged into the book
	SkippedCards  int // cards dropped (malformed or nameless)
	SkippedPhones int // TEL values that failed phone validation
	SkippedDates  int // BDAY values that could not become a birthday
}

// ImportFile reads a .vcf file and merges its cards into the book.
func ImportFile(path string, book *contacts.AddressBook) (ImportStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportStats{}, fmt.Errorf("%s: %w", config.ErrVCardOpen, err)
	}
	defer func() { _ = f.Close() }()

	return Import(f, book)
}

// Import decodes a vCard stream card by card. One bad card does not abort
// the rest: malformed entries are logged and skipped to maximize recovery.
// Imported records replace existing ones with the same name.
func Import(r io.Reader, book *contacts.AddressBook) (ImportStats, error) {
	log := slog.With(config.LogKeyComponent, config.CompExchange)

	decoder := vcard.NewDecoder(r)
	var stats ImportStats

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			stats.SkippedCards++
			continue
		}
		stats.Processed++

		name := cardName(card)
		if name == "" {
			log.Warn(config.MsgSkippedNoName)
			stats.SkippedCards++
			continue
		}

		record := contacts.NewRecord(name)

		for _, tel := range card.Values(config.VCardTEL) {
			if err := record.PutPhone(digitsOnly(tel)); err != nil {
				log.Debug(config.MsgSkippedPhone,
					config.LogKeyName, name,
					config.LogKeyValue, tel,
				)
				stats.SkippedPhones++
			}
		}

		if bday := card.Get(config.VCardBDAY); bday != nil && bday.Value != "" {
			value, ok := convertBirthday(bday.Value)
			if ok {
				// The converted value always fits the layout, so this cannot fail.
				_ = record.AddBirthday(value)
			} else {
				log.Debug(config.MsgSkippedDate,
					config.LogKeyName, name,
					config.LogKeyValue, bday.Value,
				)
				stats.SkippedDates++
			}
		}

		book.AddRecord(record)
		stats.Imported++
	}

	log.Info(config.MsgImportDone,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.Processed),
			slog.Int(config.LogKeyImported, stats.Imported),
			slog.Int(config.LogKeySkipped, stats.SkippedCards),
		),
	)
	return stats, nil
}

// cardName extracts a display name. Strategy: FN (Formatted) > N (Structured).
func cardName(card vcard.Card) string {
	if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
		return fn.Value
	}
	if n := card.Get(config.VCardN); n != nil && n.Value != "" {
		return n.Value
	}
	return ""
}

// convertBirthday rewrites a vCard BDAY value into the book's day-first
// layout. Year-less values like --06-15 are rejected: a stored birthday
// needs the full date.
func convertBirthday(value string) (string, bool) {
	layouts := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(config.BirthdayLayout), true
		}
	}
	return "", false
}

// digitsOnly strips separator punctuation, so "050-123-45-67" and
// "(050) 123 45 67" both normalize to the same ten digits.
func digitsOnly(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if value[i] >= '0' && value[i] <= '9' {
			b.WriteByte(value[i])
		}
	}
	return b.String()
}
