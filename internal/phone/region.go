// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package phone

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/pdiddy/verizon2sms/internal/logging"
)

// localeVars are consulted in setlocale(LC_ALL, "") precedence order.
var localeVars = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// GuessRegion derives a region code from the locale environment read through
// getenv. It returns "" when no locale is set or the locale names no country.
func GuessRegion(getenv func(string) string) string {
	for _, key := range localeVars {
		if v := getenv(key); v != "" {
			return RegionFromLocale(v)
		}
	}
	return ""
}

// RegionFromLocale extracts the uppercase country code from a locale name.
// Both the POSIX form (en_US.UTF-8, de_DE@euro) and the hyphenated form
// (en-US, zh-Hant-TW) are understood.
func RegionFromLocale(name string) string {
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if !strings.ContainsAny(name, "_-") {
		return ""
	}

	name = strings.ReplaceAll(name, "_", "-")
	tag, err := language.Parse(name)
	if err != nil {
		return rawRegion(name)
	}
	region, conf := tag.Region()
	if conf != language.Exact || !region.IsCountry() {
		return ""
	}
	return strings.ToUpper(region.String())
}

// rawRegion returns the second subtag of a locale the language registry
// does not know, such as xx-US, when it looks like an alpha-2 country code.
func rawRegion(name string) string {
	parts := strings.Split(name, "-")
	if len(parts) < 2 || len(parts[1]) != 2 {
		return ""
	}
	for _, r := range parts[1] {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return ""
		}
	}
	return strings.ToUpper(parts[1])
}

// GuessRegionOrWarn is GuessRegion with the diagnostics the CLI reports.
func GuessRegionOrWarn(getenv func(string) string, log logging.Sink) string {
	region := GuessRegion(getenv)
	if region == "" {
		log.Warn("Unable to guess phone number region. Numbers must start with '+' then country code.")
		return ""
	}
	log.Debug("Assuming phone region", zap.String("region", region))
	return region
}
