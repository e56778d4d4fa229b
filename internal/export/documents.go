package export

// FilmDoc is one film as the site sees it. Empty catalog fields are omitted
// from the document entirely; ControlledSubjects is always present, empty
// when the film has no tags.
type FilmDoc struct {
	ID                 int64        `json:"id"`
	AFIMovieID         string       `json:"afi_movie_id,omitempty"`
	Title              string       `json:"title"`
	ReleaseYear        int          `json:"release_year,omitempty"`
	ReleaseDate        string       `json:"release_date,omitempty"`
	Director           string       `json:"director,omitempty"`
	DirectorID         string       `json:"director_id,omitempty"`
	Writer             string       `json:"writer,omitempty"`
	Producer           string       `json:"producer,omitempty"`
	Genre              string       `json:"genre,omitempty"`
	SubGenre           string       `json:"sub_genre,omitempty"`
	FilmType           string       `json:"film_type,omitempty"`
	Subjects           string       `json:"subjects,omitempty"`
	LiteraryCredits    string       `json:"literary_credits,omitempty"`
	SourceCitations    string       `json:"source_citations,omitempty"`
	FilmingLocation    string       `json:"filming_location,omitempty"`
	SurvivalStatus     string       `json:"survival_status,omitempty"`
	ControlledSubjects []SubjectDoc `json:"controlled_subjects"`
}

// SubjectDoc is one weighted controlled-term tag on a film.
type SubjectDoc struct {
	Term   string `json:"term"`
	Facet  string `json:"facet"`
	Weight int    `json:"weight"`
}

// AuthorDoc groups a source author's adaptations.
type AuthorDoc struct {
	Name            string          `json:"name"`
	AdaptationCount int             `json:"adaptation_count"`
	FirstAdaptation int             `json:"first_adaptation"`
	LastAdaptation  int             `json:"last_adaptation"`
	YearSpan        int             `json:"year_span"`
	Films           []AuthorFilmDoc `json:"films"`
}

// AuthorFilmDoc is the short film form inside an author document.
type AuthorFilmDoc struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Year           int    `json:"year"`
	SurvivalStatus string `json:"survival_status,omitempty"`
}

// FacetDoc is one vocabulary facet with its terms and usage.
type FacetDoc struct {
	Facet      string    `json:"facet"`
	Terms      []TermDoc `json:"terms"`
	TermCount  int       `json:"term_count"`
	TotalUsage int       `json:"total_usage"`
}

// TermDoc is one vocabulary term inside a facet document.
type TermDoc struct {
	Term       string `json:"term"`
	UsageCount int    `json:"usage_count"`
	ScopeNote  string `json:"scope_note,omitempty"`
}

// ThemeTrendDoc is one term's per-decade tag counts.
type ThemeTrendDoc struct {
	Facet   string         `json:"facet"`
	Term    string         `json:"term"`
	Decades map[string]int `json:"decades"`
	Total   int            `json:"total"`
}

// CoOccurrenceDoc is one cross-facet theme pairing.
type CoOccurrenceDoc struct {
	Theme1 string `json:"theme1"`
	Theme2 string `json:"theme2"`
	Count  int    `json:"count"`
}

// AnalysisDoc bundles the precomputed theme analyses.
type AnalysisDoc struct {
	ThemesByDecade    []ThemeTrendDoc   `json:"themes_by_decade"`
	CoOccurringThemes []CoOccurrenceDoc `json:"co_occurring_themes"`
}

// SearchEntryDoc is one row of the client-side search index.
type SearchEntryDoc struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Year       int    `json:"year,omitempty"`
	Author     string `json:"author,omitempty"`
	Searchable string `json:"searchable"`
}

// MetadataDoc describes the dataset for the site's front page.
type MetadataDoc struct {
	Title       string        `json:"title"`
	Subtitle    string        `json:"subtitle"`
	Generated   string        `json:"generated"`
	Statistics  StatisticsDoc `json:"statistics"`
	LastUpdated string        `json:"last_updated"`
}

// StatisticsDoc carries dataset-wide counts.
type StatisticsDoc struct {
	TotalFilms           int          `json:"total_films"`
	TotalAuthors         int          `json:"total_authors"`
	YearRange            YearRangeDoc `json:"year_range"`
	TotalControlledTerms int          `json:"total_controlled_terms"`
}

// YearRangeDoc is the corpus's first and last release year.
type YearRangeDoc struct {
	Start int `json:"start"`
	End   int `json:"end"`
}
