package credits

import (
	"regexp"
	"strings"
)

// Credit is a single parsed credit: a person name and, when the source field
// carried one, the AFI person identifier that followed it.
type Credit struct {
	Name  string
	AFIID string
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Parse splits a credit field into ordered (name, id) pairs.
//
// Splitting is on the literal pipe delimiter with surrounding whitespace
// trimmed. Empty parts (doubled, leading, or trailing delimiters) are
// dropped. A part consisting solely of digits is the AFI id of the
// immediately preceding name; when there is no preceding name, or it already
// has an id, the token is discarded. "Louis King|101085" therefore parses as
// one credit, the id attaching to the name split off beside it.
func Parse(field string) []Credit {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}

	var out []Credit
	for _, part := range strings.Split(field, "|") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if digitsOnly.MatchString(part) {
			if len(out) > 0 && out[len(out)-1].AFIID == "" {
				out[len(out)-1].AFIID = part
			}
			continue
		}
		out = append(out, Credit{Name: part})
	}
	return out
}

// Names returns just the parsed names, in billing order.
func Names(field string) []string {
	parsed := Parse(field)
	if len(parsed) == 0 {
		return nil
	}
	names := make([]string, len(parsed))
	for i, credit := range parsed {
		names[i] = credit.Name
	}
	return names
}

// Primary returns the first credited name, or "" when the field is empty.
func Primary(field string) string {
	parsed := Parse(field)
	if len(parsed) == 0 {
		return ""
	}
	return parsed[0].Name
}
