package exchange

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-ical"

	"github.com/obairak/contact-assistant/internal/config"
	"github.com/obairak/contact-assistant/internal/contacts"
)

// BuildCalendar renders congratulation dates as an iCalendar document.
// Every entry becomes an all-day VEVENT on its already weekend-corrected
// date. An empty input yields the minimal stub calendar so consumers
// always receive a valid object.
func BuildCalendar(items []contacts.Congratulation, now time.Time) ([]byte, error) {
	if len(items) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Stamp with UTC; the event dates themselves are local calendar days.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, item := range items {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, eventUID(item))
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatSummary, item.Name))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(item.Date)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// WriteCalendarFile renders the calendar and writes it with owner-only
// permissions.
func WriteCalendarFile(path string, items []contacts.Congratulation, now time.Time) error {
	data, err := BuildCalendar(items, now)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalWrite, err)
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExchange,
		config.LogKeyFile, path,
		config.LogKeyCount, len(items),
	)
	return nil
}

// eventUID derives a stable identifier from the entry itself, so repeated
// exports of the same week produce identical events.
func eventUID(item contacts.Congratulation) string {
	input := fmt.Sprintf(config.FormatHashInput,
		item.Name,
		item.Date.Format(config.DateFormatDisplay),
		config.UIDSalt,
	)
	hash := sha256.Sum256([]byte(input))
	uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])
	return fmt.Sprintf(config.FormatUID, uidBase, item.Date.Year(), config.ICalDomain)
}
