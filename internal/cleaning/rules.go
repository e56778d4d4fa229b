package cleaning

import (
	"regexp"
	"strings"
)

// Rule rewrites one field value. Rules must be idempotent: applying a rule to
// its own output changes nothing.
type Rule struct {
	Name   string
	Fields []string
	Clean  func(string) string
}

var pipeSplit = regexp.MustCompile(`\s*\|\s*`)

// crewFields are the credit fields the catalog decorates with person ids.
var crewFields = []string{"director", "writer", "producer"}

// plainFields only ever need whitespace and separator repair.
var plainFields = []string{
	"genre", "sub_genre", "subjects", "literary_credits",
	"source_citations", "filming_location",
}

// Rules returns the cleaning passes in application order.
func Rules() []Rule {
	return []Rule{
		{
			Name:   "strip catalog ids from crew names",
			Fields: crewFields,
			Clean:  CleanCrewField,
		},
		{
			Name:   "standardize separators and whitespace",
			Fields: plainFields,
			Clean:  StandardizeSeparators,
		},
	}
}

// CleanCrewField removes bare catalog id tokens from a pipe-separated crew
// field and rewrites it with the canonical " | " separator. "Louis
// King|101085" becomes "Louis King"; co-credits keep their order.
func CleanCrewField(value string) string {
	parts := pipeSplit.Split(value, -1)
	kept := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || isDigits(part) {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, " | ")
}

// StandardizeSeparators trims a multi-value field and rewrites its separators
// as " | ", collapsing doubled pipes and empty segments.
func StandardizeSeparators(value string) string {
	if !strings.Contains(value, "|") {
		return strings.TrimSpace(value)
	}
	parts := pipeSplit.Split(value, -1)
	kept := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, " | ")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
