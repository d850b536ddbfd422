package exchange_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obairak/contact-assistant/internal/contacts"
	"github.com/obairak/contact-assistant/internal/exchange"
)

func TestImport_TwoCards(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:4.0
FN:John Doe
TEL:1234567890
BDAY:1990-06-15
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Jane Roe
TEL:0987654321
END:VCARD`

	book := contacts.NewAddressBook()
	stats, err := exchange.Import(strings.NewReader(vcardContent), book)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 2, stats.Imported)
	assert.Equal(t, 2, book.Len())

	john, ok := book.Find("John Doe")
	require.True(t, ok)
	assert.Equal(t, []string{"1234567890"}, john.Phones())
	birthday, ok := john.Birthday()
	require.True(t, ok)
	assert.Equal(t, "15.06.1990", birthday.Value(), "BDAY is converted to the day-first layout")

	jane, ok := book.Find("Jane Roe")
	require.True(t, ok)
	_, ok = jane.Birthday()
	assert.False(t, ok)
}

func TestImport_NameFallsBackToN(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:3.0
N:Doe;John;;;
TEL:1234567890
END:VCARD`

	book := contacts.NewAddressBook()
	stats, err := exchange.Import(strings.NewReader(vcardContent), book)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)
	_, ok := book.Find("Doe;John;;;")
	assert.True(t, ok, "without FN the structured N value becomes the name")
}

func TestImport_SkipsNamelessCard(t *testing.T) {
	vcardContent := `BEGIN:VCARD
VERSION:3.0
TEL:1234567890
END:VCARD
BEGIN:VCARD
VERSION:3.0
FN:Keeper
END:VCARD`

	book := contacts.NewAddressBook()
	stats, err := exchange.Import(strings.NewReader(vcardContent), book)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.SkippedCards)
	assert.Equal(t, 1, stats.Imported)
	assert.Equal(t, 1, book.Len())
}

func TestImport_PhoneNormalization(t *testing.T) {
	// The first TEL collapses to ten digits; the second keeps twelve even
	// after stripping and must be dropped.
	vcardContent := `BEGIN:VCARD
VERSION:3.0
FN:Ann
TEL:050-123-45-67
TEL:+380501234567
END:VCARD`

	book := contacts.NewAddressBook()
	stats, err := exchange.Import(strings.NewReader(vcardContent), book)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.SkippedPhones)

	ann, ok := book.Find("Ann")
	require.True(t, ok)
	assert.Equal(t, []string{"0501234567"}, ann.Phones())
}

func TestImport_BirthdayFormats_TableDriven(t *testing.T) {
	tests := []struct {
		name      string
		bdayValue string
		want      string
		stored    bool
	}{
		{"ISO8601 Standard", "1990-10-25", "25.10.1990", true},
		{"Basic Format", "19901025", "25.10.1990", true},
		{"RFC3339", "1990-10-25T00:00:00Z", "25.10.1990", true},
		{"Truncated (Month-Day)", "--10-25", "", false},
		{"Garbage Data", "not-a-date", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "BEGIN:VCARD\nVERSION:3.0\nFN:Test\nBDAY:" + tt.bdayValue + "\nEND:VCARD"

			book := contacts.NewAddressBook()
			stats, err := exchange.Import(strings.NewReader(content), book)
			require.NoError(t, err)
			assert.Equal(t, 1, stats.Imported, "the card itself is always imported")

			record, ok := book.Find("Test")
			require.True(t, ok)
			birthday, ok := record.Birthday()
			if !tt.stored {
				assert.False(t, ok, "unusable BDAY must leave the record birthday-less")
				assert.Equal(t, 1, stats.SkippedDates)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, birthday.Value())
		})
	}
}

func TestImport_OverwritesExistingRecord(t *testing.T) {
	book := contacts.NewAddressBook()
	existing := contacts.NewRecord("John Doe")
	require.NoError(t, existing.PutPhone("9999999999"))
	book.AddRecord(existing)

	vcardContent := "BEGIN:VCARD\nVERSION:3.0\nFN:John Doe\nTEL:1234567890\nEND:VCARD"
	_, err := exchange.Import(strings.NewReader(vcardContent), book)
	require.NoError(t, err)

	john, ok := book.Find("John Doe")
	require.True(t, ok)
	assert.Equal(t, []string{"1234567890"}, john.Phones(), "import replaces same-name records")
	assert.Equal(t, 1, book.Len())
}

func TestImportFile(t *testing.T) {
	vcardContent := "BEGIN:VCARD\nVERSION:3.0\nFN:John Doe\nTEL:1234567890\nEND:VCARD"

	tmpFile, err := os.CreateTemp("", "test_import_*.vcf")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(vcardContent)
	require.NoError(t, err)
	_ = tmpFile.Close()

	book := contacts.NewAddressBook()
	stats, err := exchange.ImportFile(tmpFile.Name(), book)

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)
}

func TestImportFile_MissingFile(t *testing.T) {
	book := contacts.NewAddressBook()
	_, err := exchange.ImportFile("/this/path/does/not/exist.vcf", book)

	assert.Error(t, err)
	assert.Equal(t, 0, book.Len())
}
