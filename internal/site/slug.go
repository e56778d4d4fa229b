package site

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns a title or name into a URL path segment: diacritics folded
// to ASCII, punctuation dropped, words joined with hyphens. "Gene
// Stratton-Porter" becomes "gene-stratton-porter".
func Slugify(text string) string {
	if folded, _, err := transform.String(slugStripper, text); err == nil {
		text = folded
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	lastHyphen := true
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// FilmSlug is the canonical page slug for a film: slugified title plus the
// release year, which keeps remakes of the same novel apart.
func FilmSlug(title string, year int) string {
	return Slugify(title) + "-" + strconv.Itoa(year)
}
