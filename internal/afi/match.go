package afi

import (
	"strconv"
	"strings"
)

// ExactMatch scans a search response for the result whose title matches the
// target case-insensitively and whose year matches exactly. Results with a
// missing or unparseable year never match; a close-but-wrong film in the
// corpus is worse than a gap.
func ExactMatch(resp *SearchResponse, title string, year int) *Document {
	if resp == nil {
		return nil
	}
	want := strings.ToLower(strings.TrimSpace(title))
	for _, doc := range resp.Documents() {
		if strings.ToLower(strings.TrimSpace(doc.MovieName)) != want {
			continue
		}
		got, err := strconv.Atoi(strings.TrimSpace(string(doc.ReleaseYear)))
		if err != nil || got != year {
			continue
		}
		matched := doc
		return &matched
	}
	return nil
}
