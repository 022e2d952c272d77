package zone

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Zone is a billing region. Tariff is the price per service unit, in cents.
type Zone struct {
	ID        string
	Name      string
	Tariff    int64
	CreatedAt time.Time
}

// Tariffs maps a zone id to its price per service unit in cents.
type Tariffs map[string]int64

// Of returns the tariff of zoneID, or 0 when the zone has none.
func (t Tariffs) Of(zoneID string) int64 {
	return t[zoneID]
}

// Slug derives a zone id from its display name: accents are folded, runs of
// anything that is not a letter or digit collapse into a single dash.
func Slug(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(fold, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		folded = strings.ToLower(strings.TrimSpace(name))
	}

	var b strings.Builder

	dash := false

	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)

			dash = false

			continue
		}

		if !dash && b.Len() > 0 {
			b.WriteByte('-')

			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
