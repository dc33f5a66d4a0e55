package patient

import (
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is the region assumed for numbers without a country code.
const DefaultRegion = "US"

// FormatPhone renders raw in E.164 form. Values that cannot be parsed are
// returned unchanged.
func FormatPhone(raw string) string {
	if raw == "" {
		return ""
	}

	num, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
