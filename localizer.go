package favmeta

// Message keys requested from a Localizer.
const (
	MsgNoTitle       = "noTitle"
	MsgNoKeywords    = "noKeywords"
	MsgNoDescription = "noDescription"
	MsgInvalidURL    = "invalidUrl"
	MsgFetchError    = "fetchError"
	MsgInputRequired = "inputRequired"
)

// Localizer supplies human-readable strings by message key.
type Localizer interface {
	// Message returns the string for key, or key itself if it is unknown.
	Message(key string) string
}

// ErrorMessageKey maps an error to the message key shown to the user.
// The underlying cause is never exposed; anything unclassified is reported
// as a fetch error.
func ErrorMessageKey(err error) string {
	switch ErrorCode(err) {
	case "":
		return ""
	case EINVALIDURL:
		return MsgInvalidURL
	case EREQUIRED:
		return MsgInputRequired
	default:
		return MsgFetchError
	}
}
