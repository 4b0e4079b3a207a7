// Package datefmt formats calendar dates with localised month and weekday names.
package datefmt

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// names holds the localised month and weekday names for one language
type names struct {
	months      [12]string
	shortMonths [12]string
	days        [7]string
	shortDays   [7]string
}

var supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
	language.Spanish,
}

var tables = []names{
	{
		months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
		shortMonths: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		days:        [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		shortDays:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	},
	{
		months:      [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		shortMonths: [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
		days:        [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		shortDays:   [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
	},
	{
		months:      [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		shortMonths: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		days:        [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		shortDays:   [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
	},
}

var matcher = language.NewMatcher(supported)

// Formatter renders dates using a Go layout and a locale's month and weekday names
type Formatter struct {
	Layout string
	Tag    language.Tag
	names  names
}

// New creates a formatter for the BCP 47 locale (e.g. "pt-BR").
// Unknown or unsupported locales fall back to English.
func New(locale, layout string) *Formatter {
	desired, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(desired) == 0 {
		desired = []language.Tag{language.English}
	}

	_, index, confidence := matcher.Match(desired...)
	if confidence == language.No {
		index = 0
	}

	return &Formatter{
		Layout: layout,
		Tag:    supported[index],
		names:  tables[index],
	}
}

// Format renders t with the formatter's layout, replacing English month and
// weekday names with the locale's names
func (f *Formatter) Format(t time.Time) string {
	layout := f.Layout
	replacements := make([]string, 0, 8)

	// Longest tokens first so "January" is not consumed as "Jan"
	for _, token := range []struct {
		layout string
		value  string
	}{
		{"January", f.names.months[t.Month()-1]},
		{"Monday", f.names.days[t.Weekday()]},
		{"Jan", f.names.shortMonths[t.Month()-1]},
		{"Mon", f.names.shortDays[t.Weekday()]},
	} {
		if !strings.Contains(layout, token.layout) {
			continue
		}
		// Letters q..t are not layout elements, so the placeholder survives t.Format
		placeholder := "\x00" + string(rune('q'+len(replacements)/2)) + "\x00"
		layout = strings.ReplaceAll(layout, token.layout, placeholder)
		replacements = append(replacements, placeholder, token.value)
	}

	return strings.NewReplacer(replacements...).Replace(t.Format(layout))
}

// DayName returns the locale's full weekday name, title-cased (e.g. "Sábado")
func (f *Formatter) DayName(day time.Weekday) string {
	return cases.Title(f.Tag).String(f.names.days[day])
}
