package tasks

import (
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured or the configured one
// does not parse.
const DefaultLocale = "en-US"

// Formatter renders an instant for display.
type Formatter func(time.Time) string

// Layouts for the locales we render; the first entry is the fallback.
var (
	supported = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Spanish,
		language.Japanese,
	}
	layouts = []string{
		"1/2/2006, 3:04:05 PM",
		"02/01/2006, 15:04:05",
		"2.1.2006, 15:04:05",
		"02/01/2006 15:04:05",
		"2/1/2006, 15:04:05",
		"2006/1/2 15:04:05",
	}
	matcher = language.NewMatcher(supported)
)

// LocaleLayout returns the time layout closest to the BCP 47 tag locale.
func LocaleLayout(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return layouts[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return layouts[0]
	}
	return layouts[idx]
}

// LocaleFormatter renders instants in loc using the layout for locale.
// A nil loc means time.Local.
func LocaleFormatter(locale string, loc *time.Location) Formatter {
	layout := LocaleLayout(locale)
	if loc == nil {
		loc = time.Local
	}
	return func(t time.Time) string {
		return t.In(loc).Format(layout)
	}
}
