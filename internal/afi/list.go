package afi

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ListEntry is one film a researcher wants collected.
type ListEntry struct {
	Title string
	Year  int
}

// ReadList parses a two-column CSV of title,year. A header row named
// "title,year" is skipped; blank lines and lines starting with # are ignored.
func ReadList(path string) ([]ListEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open film list: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse film list %s: %w", path, err)
	}

	var entries []ListEntry
	for i, record := range records {
		if len(record) == 0 || (len(record) == 1 && strings.TrimSpace(record[0]) == "") {
			continue
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("film list %s line %d: want title,year", path, i+1)
		}
		title := strings.TrimSpace(record[0])
		yearText := strings.TrimSpace(record[1])
		if i == 0 && strings.EqualFold(title, "title") && strings.EqualFold(yearText, "year") {
			continue
		}
		year, err := strconv.Atoi(yearText)
		if err != nil {
			return nil, fmt.Errorf("film list %s line %d: bad year %q", path, i+1, yearText)
		}
		if title == "" {
			return nil, fmt.Errorf("film list %s line %d: empty title", path, i+1)
		}
		entries = append(entries, ListEntry{Title: title, Year: year})
	}
	return entries, nil
}
