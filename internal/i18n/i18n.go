// Package i18n localizes calendar labels. Traditional Chinese is the source
// language; an English catalog is registered at init.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

// labelFormat formats a lunar date label from year stem-branch, month name and day name.
const labelFormat = "%s年%s%s"

var supported = []language.Tag{
	language.TraditionalChinese,
	language.English,
}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// MatchTags returns the supported tag that best matches the preference list.
func MatchTags(tags ...language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

// ParseTag parses a BCP 47 value and matches it against the supported tags.
func ParseTag(value string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Und, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, false
	}
	return supported[idx], true
}

// ResolveTag picks the response language for r: the lang query parameter,
// then Accept-Language, then fallback.
func ResolveTag(r *http.Request, fallback language.Tag) language.Tag {
	if r == nil {
		return fallback
	}

	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, ok := ParseTag(v); ok {
			return tag
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return MatchTags(tags...)
		}
	}

	return fallback
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Localizer translates calendar labels for one language.
type Localizer struct {
	tag language.Tag
	p   *message.Printer
}

// NewLocalizer returns a Localizer for tag.
func NewLocalizer(tag language.Tag) *Localizer {
	return &Localizer{tag: tag, p: Printer(tag)}
}

// Tag returns the localizer's language.
func (l *Localizer) Tag() language.Tag { return l.tag }

// T translates a catalog key, returning the key itself when no entry exists.
func (l *Localizer) T(key string) string {
	if key == "" {
		return ""
	}
	return l.p.Sprintf(key)
}

// Label formats the label of a lunar date.
func (l *Localizer) Label(d calendar.LunarDate) string {
	return l.p.Sprintf(labelFormat,
		calendar.YearGanZhi(d.Year).String(),
		l.T(calendar.MonthName(d.Month, d.IsLeapMonth)),
		l.T(calendar.DayName(d.Day)),
	)
}

// Day returns a localized copy of info.
func (l *Localizer) Day(info *calendar.DayInfo) *calendar.DayInfo {
	out := *info
	out.Weekday = l.T(info.Weekday)
	out.Zodiac = l.T(info.Zodiac)
	out.MonthName = l.T(info.MonthName)
	out.DayName = l.T(info.DayName)
	out.Label = l.Label(info.Lunar)
	out.Festival = calendar.Festival(l.T(string(info.Festival)))
	return &out
}

// Days localizes a slice of day descriptions.
func (l *Localizer) Days(infos []*calendar.DayInfo) []*calendar.DayInfo {
	out := make([]*calendar.DayInfo, len(infos))
	for i, info := range infos {
		out[i] = l.Day(info)
	}
	return out
}

// Year returns a localized copy of info.
func (l *Localizer) Year(info *calendar.YearInfo) *calendar.YearInfo {
	out := *info
	out.Zodiac = l.T(info.Zodiac)
	return &out
}

// Festivals localizes festival names.
func (l *Localizer) Festivals(fs []calendar.FestivalDate) []calendar.FestivalDate {
	out := make([]calendar.FestivalDate, len(fs))
	for i, f := range fs {
		f.Festival = calendar.Festival(l.T(string(f.Festival)))
		out[i] = f
	}
	return out
}

// Strings translates each key.
func (l *Localizer) Strings(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = l.T(k)
	}
	return out
}
