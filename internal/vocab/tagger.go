package vocab

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/nonmodernist/holreg-database/internal/logging"
	"github.com/nonmodernist/holreg-database/internal/store"
)

// Tagger applies controlled terms to films by resolving each film's raw
// subject strings through the mapping table and, failing that, the keyword
// pattern rules.
type Tagger struct {
	store    *store.Store
	logger   *slog.Logger
	patterns []PatternRule
}

// TagSummary reports one tagging pass.
type TagSummary struct {
	FilmsProcessed int
	FilmsTagged    int
	Assignments    int
	// Unmapped counts, per raw subject, how many films carried a subject
	// nothing could resolve. The list is the raw material for the next
	// round of mapping curation.
	Unmapped map[string]int
}

// UnmappedSubjects returns the unresolved subjects, most frequent first.
func (s *TagSummary) UnmappedSubjects() []string {
	subjects := make([]string, 0, len(s.Unmapped))
	for subject := range s.Unmapped {
		subjects = append(subjects, subject)
	}
	sort.Slice(subjects, func(i, j int) bool {
		if s.Unmapped[subjects[i]] != s.Unmapped[subjects[j]] {
			return s.Unmapped[subjects[i]] > s.Unmapped[subjects[j]]
		}
		return subjects[i] < subjects[j]
	})
	return subjects
}

// NewTagger builds a tagger with the standard pattern rules.
func NewTagger(st *store.Store, logger *slog.Logger) *Tagger {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Tagger{
		store:    st,
		logger:   logging.WithComponent(logger, "tagger"),
		patterns: PatternRules(),
	}
}

// resolution is a subject resolved to a term with the mapping's confidence.
type resolution struct {
	termID     int64
	confidence float64
}

// Run tags every film that has raw subjects. With apply false nothing is
// written; the summary shows what a real pass would do. Exact mappings always
// win over pattern rules; when several subjects resolve to the same term the
// strongest weight is kept, and reruns never pull a stored weight down.
// reset drops each film's automatic tags first, so a pass after mapping
// curation sheds assignments the current rules no longer make.
func (t *Tagger) Run(ctx context.Context, apply, reset bool) (*TagSummary, error) {
	mappings, err := t.store.Mappings(ctx)
	if err != nil {
		return nil, err
	}
	terms, err := t.store.ListTerms(ctx)
	if err != nil {
		return nil, err
	}
	termIDs := make(map[string]int64, len(terms))
	for _, term := range terms {
		termIDs[term.Term] = term.ID
	}

	films, err := t.store.FilmsWithSubjects(ctx)
	if err != nil {
		return nil, err
	}

	summary := &TagSummary{Unmapped: make(map[string]int)}
	for _, film := range films {
		subjects := splitSubjects(film.Subjects)
		counts := make(map[string]int, len(subjects))
		for _, subject := range subjects {
			counts[subject]++
		}

		weights := make(map[int64]int)
		for _, subject := range subjects {
			resolved, ok := t.resolve(subject, mappings, termIDs)
			if !ok {
				summary.Unmapped[subject]++
				continue
			}
			weight := relevanceWeight(resolved.confidence, counts[subject] > 1)
			if weight > weights[resolved.termID] {
				weights[resolved.termID] = weight
			}
		}

		if len(weights) > 0 {
			summary.FilmsTagged++
		}
		summary.Assignments += len(weights)
		if !apply {
			continue
		}
		if reset {
			if err := t.store.ClearTags(ctx, film.ID); err != nil {
				return nil, err
			}
		}
		for termID, weight := range weights {
			if err := t.store.AssignTerm(ctx, film.ID, termID, weight, "auto_mapped"); err != nil {
				return nil, err
			}
		}
	}
	summary.FilmsProcessed = len(films)

	t.logger.Info("tagging pass finished",
		logging.Bool("applied", apply),
		logging.Int("films", summary.FilmsProcessed),
		logging.Int("tagged", summary.FilmsTagged),
		logging.Int("assignments", summary.Assignments),
		logging.Int("unmapped_subjects", len(summary.Unmapped)))
	return summary, nil
}

func (t *Tagger) resolve(subject string, mappings map[string]store.Mapping, termIDs map[string]int64) (resolution, bool) {
	if mapping, ok := mappings[subject]; ok {
		return resolution{termID: mapping.TermID, confidence: mapping.Confidence}, true
	}
	// A subject that is itself a controlled term needs no mapping row.
	if termID, ok := termIDs[subject]; ok {
		return resolution{termID: termID, confidence: 1.0}, true
	}

	lower := strings.ToLower(subject)
	for _, rule := range t.patterns {
		if !rule.Pattern.MatchString(lower) {
			continue
		}
		if termID, ok := termIDs[rule.Term]; ok {
			return resolution{termID: termID, confidence: rule.Confidence}, true
		}
	}

	// Compound headings like "Marriage--Secret" fall back to their base.
	if base, _, found := strings.Cut(subject, "--"); found {
		base = strings.TrimSpace(base)
		if termID, ok := termIDs[base]; ok {
			return resolution{termID: termID, confidence: 0.9}, true
		}
		if mapping, ok := mappings[base]; ok {
			return resolution{termID: mapping.TermID, confidence: 0.85}, true
		}
	}
	return resolution{}, false
}

// relevanceWeight grades an assignment: high-confidence mappings rate 2,
// rising to 3 when the catalog repeats the subject; weaker mappings rate 1,
// rising to 2 on repetition.
func relevanceWeight(confidence float64, repeated bool) int {
	if confidence >= 0.9 {
		if repeated {
			return 3
		}
		return 2
	}
	if repeated {
		return 2
	}
	return 1
}

func splitSubjects(raw string) []string {
	parts := strings.Split(raw, "|")
	subjects := parts[:0]
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		subjects = append(subjects, part)
	}
	return subjects
}
