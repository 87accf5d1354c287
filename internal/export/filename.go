package export

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const defaultFileStem = "dados"

// Filename builds "<stem>_<ISO-8601 UTC with ':' and '.' as '-'>.<ext>".
func Filename(configName, ext string, now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return fmt.Sprintf("%s_%s.%s", FileStem(configName), stamp, ext)
}

// FileStem folds accents away and keeps only characters that are safe in a
// Content-Disposition header.
func FileStem(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, strings.TrimSpace(name))
	if err != nil {
		ascii = name
	}
	stem := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.', r == ' ':
			return r
		default:
			return '_'
		}
	}, ascii)
	stem = strings.Trim(stem, " .")
	if stem == "" {
		return defaultFileStem
	}
	return stem
}
