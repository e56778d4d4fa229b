package vocab

import "regexp"

// PatternRule maps subjects to a term by keyword when no exact mapping
// exists. Rules are tried in order; the first match wins, so narrower
// patterns sit above broader ones within each group.
type PatternRule struct {
	Pattern    *regexp.Regexp
	Term       string
	Confidence float64
}

// PatternRules returns the keyword fallback rules. Patterns match against the
// lowercased subject.
func PatternRules() []PatternRule {
	return []PatternRule{
		// Family.
		{regexp.MustCompile(`\bbrother.*sister\b`), "Brothers and sisters", 0.9},
		{regexp.MustCompile(`\b(mother|maternal)\b`), "Motherhood", 0.8},
		{regexp.MustCompile(`\b(father|paternal)\b`), "Fatherhood", 0.8},
		{regexp.MustCompile(`\b(grandparents?|grandmothers?|grandfathers?)\b`), "Family relationships", 0.8},
		{regexp.MustCompile(`\b(aunts?|uncles?|cousins?|nephews?|nieces?)\b`), "Family relationships", 0.8},
		{regexp.MustCompile(`\bfamily\b`), "Family relationships", 0.8},

		// Marriage.
		{regexp.MustCompile(`\b(wedding|marriage|marital|matrimony)\b`), "Marriage", 0.8},
		{regexp.MustCompile(`\b(engagement|betrothal|fianc)`), "Engagements", 0.8},
		{regexp.MustCompile(`\b(widows?|widowers?)\b`), "Widows", 0.8},
		{regexp.MustCompile(`\b(divorce|separation)\b`), "Divorce", 0.8},

		// Professions.
		{regexp.MustCompile(`\b(doctor|physician|medical)\b`), "Physicians", 0.8},
		{regexp.MustCompile(`\b(lawyer|attorney|legal)\b`), "Lawyers", 0.8},
		{regexp.MustCompile(`\b(teacher|professor|tutor)\b`), "Schoolteachers", 0.8},
		{regexp.MustCompile(`\b(nurse|nursing)\b`), "Nurses", 0.8},
		{regexp.MustCompile(`\b(minister|priest|clergy|reverend)\b`), "Ministers", 0.8},
		{regexp.MustCompile(`\b(writer|author|journalist)\b`), "Writers", 0.8},

		// Social issues.
		{regexp.MustCompile(`\b(racism|racial|prejudice)\b`), "Racism", 0.9},
		{regexp.MustCompile(`\b(poverty|poor|destitute)\b`), "Poverty", 0.9},
		{regexp.MustCompile(`\b(class|social status)\b`), "Class distinction", 0.8},
		{regexp.MustCompile(`\bslave`), "Slavery", 0.9},

		// Crime and courts.
		{regexp.MustCompile(`\b(murder|homicide|killing)\b`), "Murder", 0.9},
		{regexp.MustCompile(`\b(trial|court|judge)\b`), "Trials", 0.8},
		{regexp.MustCompile(`\b(accusation|accused|blame)\b`), "False accusations", 0.8},
		{regexp.MustCompile(`\b(kidnap|abduct)`), "Kidnapping", 0.9},

		// Death.
		{regexp.MustCompile(`\b(death|dying|dead|funeral)\b`), "Death and dying", 0.8},
		{regexp.MustCompile(`\bsuicide\b`), "Death and dying", 0.7},

		// Women-specific.
		{regexp.MustCompile(`\b(spinster|old maid)\b`), "Spinsters", 0.9},
		{regexp.MustCompile(`\b(working women|career women)\b`), "Working women", 0.9},
		{regexp.MustCompile(`\b(chorus girl|cigarette girl)\b`), "Chorus girls", 0.8},
	}
}
