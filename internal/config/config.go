package config

import "io/fs"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Contact Assistant"
	AppID       = "com.github.obairak.contact-assistant"
	AppCommand  = "contact-assistant"
	AppShort    = "An interactive address book assistant"
	LogFileName = "app.log"
)

// AppLong is the extended description shown by `contact-assistant --help`.
const AppLong = `Contact Assistant is an interactive address book for the command line.

It keeps named contacts with validated phone numbers and birthdays,
answers upcoming-birthday queries with congratulation dates moved off
weekends, imports contacts from vCard files, and exports congratulation
calendars as iCalendar.`

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs and exported calendar files.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDebug     = "debug"
	FlagDescDebug = "Enable debug logging to stderr"
)

// -----------------------------------------------------------------------------
// Environment Settings (viper)
// -----------------------------------------------------------------------------

const (
	EnvPrefix   = "ASSISTANT"
	EnvLogLevel = "ASSISTANT_LOG_LEVEL"
	EnvLogFile  = "ASSISTANT_LOG_FILE"

	SettingLogLevel = "log_level"
	SettingLogFile  = "log_file"

	DefaultLogLevel = LogLevelInfo

	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// -----------------------------------------------------------------------------
// Business Rules & Limits
// -----------------------------------------------------------------------------

const (
	// PhoneNumberLength is the exact number of decimal digits a phone must have.
	PhoneNumberLength = 10

	// UpcomingWindowDays is the inclusive lookahead for the birthdays query.
	UpcomingWindowDays = 7

	// WorkingDays marks the last ISO weekday that is not a weekend (Friday).
	WorkingDays = 5

	// BirthdayLayout parses and renders birthdays as DD.MM.YYYY.
	BirthdayLayout = "02.01.2006"

	// DateFormatDisplay renders congratulation dates in query output.
	DateFormatDisplay = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Assistant Commands & Argument Names
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdRemovePhone  = "remove-phone"
	CmdImport       = "import"
	CmdExport       = "export-calendar"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"

	ArgName     = "name"
	ArgPhone    = "phone"
	ArgNewPhone = "new_phone"
	ArgBirthday = "birthday"
	ArgFile     = "file"
)

// -----------------------------------------------------------------------------
// Assistant Messages (User-Facing)
// -----------------------------------------------------------------------------

const (
	MsgWelcome        = "Welcome to the assistant bot!"
	Prompt            = "Enter a command: "
	MsgHello          = "How can I help you?"
	MsgGoodbye        = "Good bye!"
	MsgInvalidCommand = "Invalid command."

	MsgContactAdded    = "Contact added."
	MsgContactUpdated  = "Contact updated."
	MsgContactDeleted  = "Contact deleted."
	MsgContactNotFound = "Contact not found."
	MsgContactExists   = "Contact already exists."
	MsgPhoneRemoved    = "Phone removed."
	MsgBirthdayAdded   = "Birthday added."
	MsgNoBirthday      = "Birthday not set."
	MsgNoContacts      = "No contacts."
	MsgNoUpcoming      = "No upcoming birthdays."

	// MsgEnterArgument is the fallback when no argument name is known.
	MsgEnterArgument = "Enter the argument for the command"

	// FormatEnterArgument expects the name of the missing argument.
	FormatEnterArgument = "Enter the '%s' argument for the command"

	// FormatPhoneInvalid expects the rejected phone value.
	FormatPhoneInvalid = "Invalid phone number: %s"

	// ErrMsgBirthdayFormat is the exact reply for any unparseable birthday.
	ErrMsgBirthdayFormat = "Invalid date format. Use DD.MM.YYYY"

	// FormatRecord expects name, joined phones, and a birthday (or placeholder).
	FormatRecord        = "Contact name: %s, phones: %s, birthday: %s"
	PhoneSeparator      = "; "
	BirthdayPlaceholder = "-"

	// FormatCongratsLine expects a contact name and a display-formatted date.
	FormatCongratsLine = "%s: %s"

	FormatImported = "Imported %d contacts."
	FormatExported = "Calendar saved to %s."
)

// HelpText lists every command the assistant understands.
const HelpText = `Available commands:
  hello                              greet the assistant
  add <name> <phone>                 add a new contact
  change <name> <phone> <new_phone>  replace one of a contact's phones
  phone <name>                       show a contact's phones
  all                                list all contacts
  add-birthday <name> <DD.MM.YYYY>   set a contact's birthday
  show-birthday <name>               show a contact's birthday
  birthdays                          congratulation dates for the next week
  delete <name>                      remove a contact
  remove-phone <name> <phone>        remove a single phone
  import <file.vcf>                  import contacts from a vCard file
  export-calendar <file.ics>         export upcoming birthdays as iCalendar
  help                               show this help
  close | exit                       leave the assistant`

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Contact Assistant//Exchange//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "contactassistant"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
	VCardTEL  = "TEL"

	// FormatSummary expects the contact name.
	FormatSummary = "Birthday: %s"
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = "2006-01-02T15:04:05Z07:00"
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// UID Generation
	UIDSalt         = "contact-assistant-v1-" // Salt for deterministic UID generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// File Extensions
	ExtVCF  = ".vcf"
	ExtICal = ".ics"
)

// StubVCalendar is the minimal valid iCalendar object used when no events are found.
// Using a constant avoids hardcoded magic strings in the export logic.
const StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrVCardOpen       = "failed to open vCard file"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrICalWrite       = "failed to write calendar file"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrSettingsBind    = "failed to bind environment variable"
	ErrSettingsParse   = "failed to parse settings"
	ErrSettingsInvalid = "invalid settings"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, leaving the assistant"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedNoName = "Skipping vCard without FN or N"
	MsgSkippedDate   = "Skipping unusable BDAY value"
	MsgSkippedPhone  = "Skipping invalid phone number"
	MsgImportDone    = "vCard import finished"
	MsgExportDone    = "Calendar export finished"
	MsgCmdFailed     = "Command returned an error"
	MsgCmdUnknown    = "Unknown command"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyCount     = "count"
	LogKeyTotal     = "total_cards"
	LogKeyImported  = "imported"
	LogKeySkipped   = "skipped"
	LogKeyStats     = "stats"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain      = "main"
	CompAssistant = "assistant"
	CompExchange  = "exchange"
)
