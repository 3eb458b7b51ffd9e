package config

import (
	"io/fs"
)

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
	AppName     = "Go Age"
	AppID       = "com.github.tartampluch.go-age"
	LogFileName = "app.log"

	// DefaultLanguage is the only catalogue shipped; output stays en-US.
	DefaultLanguage = "en"
)

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
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDate         = "date"
	FlagVCF          = "vcf"
	FlagICS          = "ics"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescDate     = "Birth date (YYYY-MM-DD or DD/MM/YYYY); prints the report instead of opening the window"
	FlagDescVCF      = "vCard file to read contacts from ('-' for stdin)"
	FlagDescICS      = "Print next birthdays as an iCalendar document instead of text"
	StdinPath        = "-"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Calendar Rules
// -----------------------------------------------------------------------------

const (
	// MinBirthYear is the earliest accepted year of birth.
	MinBirthYear = 1900

	MinDay   = 1
	MaxDay   = 31
	MinMonth = 1
	MaxMonth = 12

	DaysPerWeek  = 7
	HoursPerDay  = 24
	MonthsInYear = 12

	// Input widths of the day, month and year entries.
	DayDigits   = 2
	MonthDigits = 2
	YearDigits  = 4
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// DateFormatLong renders the next birthday the en-US way ("Saturday, March 15, 2025").
	DateFormatLong = "Monday, January 2, 2006"

	// Birth date layouts accepted on the command line and in vCard BDAY fields.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// Year-less vCard dates; the age cannot be computed from them.
	DateFormatNoYearD = "--01-02"
	DateFormatNoYearB = "--0102"

	// NumberLocale is the BCP 47 tag used to group thousands in statistics.
	NumberLocale = "en-US"

	// FormatSubtitle expects months then days.
	FormatSubtitle = "%d months and %d days"

	// UID Generation
	UIDSalt         = "go-age-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// MaxDecodeFailures bounds consecutive vCard decode errors before the
	// stream is considered unreadable.
	MaxDecodeFailures = 16

	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
	ExtICS   = ".ics"

	ExportFileName = "birthdays" + ExtICS

	// Command line report layout (text/tabwriter cells are tab separated).
	FormatReportHeadline = "%d %s, %s\n"
	FormatReportRow      = "%s\t%s\n"
	FormatContactRow     = "%s\t%s\t%d\t%s\n"
	FormatContactHeader  = "%s\t%s\t%s\t%s\n"
	ReportTabPadding     = 2
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Age//Engine//EN"
	ICalCalName = "Next Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goage"

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

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// UI Constants
// -----------------------------------------------------------------------------

const (
	MainWindowWidth   = 420
	MainWindowHeight  = 640
	ContactsWinWidth  = 620
	ContactsWinHeight = 420

	LayoutColumnsDouble = 2

	// Table Column IDs
	ColIDName  = 0
	ColIDDate  = 1
	ColIDAge   = 2
	ColIDUntil = 3
	ColCount   = 4

	ColWidthName  = 220
	ColWidthDate  = 120
	ColWidthAge   = 120
	ColWidthUntil = 120

	DateFormatDisplay = "2006-01-02"
	TablePlaceholder  = "Cell Content"

	PlaceholderDay   = "DD"
	PlaceholderMonth = "MM"
	PlaceholderYear  = "YYYY"

	SortIconAsc  = " ▲"
	SortIconDesc = " ▼"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyWinContacts   = "win_contacts_title"
	TKeyLblHeading    = "lbl_heading"
	TKeyLblSubheading = "lbl_subheading"
	TKeyLblBirthDate  = "lbl_birth_date"
	TKeyLblDay        = "lbl_day"
	TKeyLblMonth      = "lbl_month"
	TKeyLblYear       = "lbl_year"
	TKeyBtnCalculate  = "btn_calculate"
	TKeyBtnTheme      = "btn_toggle_theme"
	TKeyBtnImport     = "btn_import_contacts"
	TKeyBtnExport     = "btn_export_calendar"
	TKeyLblYearsOld   = "lbl_years_old"
	TKeyLblSubtitle   = "lbl_subtitle" // Requires Months, Days
	TKeyStatDays      = "stat_total_days"
	TKeyStatWeeks     = "stat_total_weeks"
	TKeyStatHours     = "stat_total_hours"
	TKeyStatUntil     = "stat_days_until"
	TKeyLblNextBday   = "lbl_next_birthday" // Requires Date
	TKeyLblFooter     = "lbl_footer"        // Requires Version
	TKeyNotifImported = "notif_imported"    // Requires Count
	TKeyNotifExported = "notif_exported"

	// Column Headers
	TKeyColName  = "col_name"
	TKeyColDate  = "col_date"
	TKeyColAge   = "col_age"
	TKeyColUntil = "col_until"

	// Validation Errors (UI & CLI)
	TKeyErrMissing = "err_missing_field"
	TKeyErrRange   = "err_out_of_range"
	TKeyErrInvalid = "err_invalid_date"
	TKeyErrFuture  = "err_future_date"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrMissingField    = "missing field"
	ErrOutOfRange      = "out-of-range value"
	ErrInvalidCalendar = "invalid calendar date"
	ErrFutureDate      = "future date not allowed"
	ErrDateParse       = "unable to parse date"
	ErrYearUnknown     = "birth year unknown"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrOpenInput       = "failed to open input"
	ErrWriteOutput     = "failed to write output"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrImportFailed    = "contacts import failed"
	ErrExportFailed    = "calendar export failed"
	ErrNothingToExport = "no birthdays to export"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackName       = "Unknown"
	FallbackSummaryAge = "Birthday: %s (%d)"

	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgAgeCalculated  = "Age calculated"
	MsgValidationFail = "Birth date rejected"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping contact with unusable birth date"
	MsgContactsRead   = "Contacts read"
	MsgCalendarBuilt  = "Calendar generation successful"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgThemeToggled   = "Theme toggled"
	MsgOpenContacts   = "Opening contacts window"
	MsgContactsSorted = "Contacts sorted"
	MsgBdayToday      = "Birthday found today"
	MsgReportWritten  = "Report written"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyYears     = "years"
	LogKeyUntil     = "days_until_birthday"
	LogKeyCount     = "count"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeySkipped   = "skipped"
	LogKeyEvents    = "events"
	LogKeySortCol   = "sort_column"
	LogKeySortAsc   = "sort_asc"
	LogKeyDark      = "dark"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyBuilt   = "built"
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
	CompUI       = "ui"
	CompContacts = "ui_contacts"
	CompVCard    = "vcard"
	CompCalendar = "calendar"
	CompMain     = "main"
	CompCLI      = "cli"
	CompI18n     = "i18n"
)
