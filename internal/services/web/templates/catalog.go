package templates

import (
	"fmt"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys for relative timestamps.
const (
	keyTimeAgo     = "time.ago"
	keyTimeSeconds = "time.seconds"
	keyTimeMinute  = "time.minute"
	keyTimeMinutes = "time.minutes"
	keyTimeHour    = "time.hour"
	keyTimeHours   = "time.hours"
	keyTimeDay     = "time.day"
	keyTimeDays    = "time.days"
)

type localeMessages struct {
	tag     language.Tag
	seconds [2]string // singular, plural
	strings map[string]string
}

var localeTable = []localeMessages{
	{
		tag:     language.AmericanEnglish,
		seconds: [2]string{"%d second", "%d seconds"},
		strings: map[string]string{
			keyTimeAgo:     "%s ago",
			keyTimeMinute:  "a minute",
			keyTimeMinutes: "%d minutes",
			keyTimeHour:    "an hour",
			keyTimeHours:   "%d hours",
			keyTimeDay:     "a day",
			keyTimeDays:    "%d days",
		},
	},
	{
		tag:     language.BrazilianPortuguese,
		seconds: [2]string{"%d segundo", "%d segundos"},
		strings: map[string]string{
			keyTimeAgo:     "há %s",
			keyTimeMinute:  "um minuto",
			keyTimeMinutes: "%d minutos",
			keyTimeHour:    "uma hora",
			keyTimeHours:   "%d horas",
			keyTimeDay:     "um dia",
			keyTimeDays:    "%d dias",
		},
	},
}

func buildCatalog() (catalog.Catalog, error) {
	builder := catalog.NewBuilder(catalog.Fallback(DefaultLanguage))
	for _, locale := range localeTable {
		seconds := plural.Selectf(1, "%d",
			"=1", locale.seconds[0],
			plural.Other, locale.seconds[1],
		)
		if err := builder.Set(locale.tag, keyTimeSeconds, seconds); err != nil {
			return nil, fmt.Errorf("set %s %s: %w", locale.tag, keyTimeSeconds, err)
		}
		for key, msg := range locale.strings {
			if err := builder.SetString(locale.tag, key, msg); err != nil {
				return nil, fmt.Errorf("set %s %s: %w", locale.tag, key, err)
			}
		}
	}
	return builder, nil
}
