package constants

const (
	AppName = "lunchbox"

	// Web app used for payee links
	WebURL = "https://my.lunchmoney.app"

	// Date Layout
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04"

	DefaultHistoryLimit = 20
	MaxPayeeLen         = 40
)
