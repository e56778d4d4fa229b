package store

import "time"

// Film mirrors a row of the films table. String fields use "" for SQL NULL;
// the export layer omits empty fields from documents.
type Film struct {
	ID              int64
	AFIMovieID      string
	Title           string
	ReleaseYear     int
	ReleaseDate     string
	Director        string
	DirectorID      string
	Writer          string
	Producer        string
	Genre           string
	SubGenre        string
	FilmType        string
	Subjects        string
	LiteraryCredits string
	SourceCitations string
	FilmingLocation string
	SurvivalStatus  string // populated only when the column exists
	CreatedAt       time.Time
}

// Company is a production or distribution company attached to a film.
type Company struct {
	ID     int64
	FilmID int64
	Name   string
	Type   CompanyType
}

// CompanyType distinguishes production from distribution credits.
type CompanyType string

const (
	CompanyProduction   CompanyType = "production"
	CompanyDistribution CompanyType = "distribution"
)

// Person is a deduplicated individual. Identity is the exact name string;
// the normalized form exists only for fuzzy lookup by researchers.
type Person struct {
	ID             int64
	Name           string
	NameNormalized string
	AFIID          string
	CreatedAt      time.Time
}

// Role selects one of the film/person junction tables.
type Role string

const (
	RoleDirector Role = "director"
	RoleWriter   Role = "writer"
	RoleProducer Role = "producer"
	RoleAuthor   Role = "author"
)

// Roles lists every junction role in normalization order.
var Roles = []Role{RoleDirector, RoleWriter, RoleProducer, RoleAuthor}

// junctionTables maps roles to their junction table names. Table names are
// never built from user input.
var junctionTables = map[Role]string{
	RoleDirector: "film_directors",
	RoleWriter:   "film_writers",
	RoleProducer: "film_producers",
	RoleAuthor:   "film_authors",
}

// SourceField returns the films column a role's credits are parsed from.
func (r Role) SourceField() string {
	switch r {
	case RoleDirector:
		return "director"
	case RoleWriter:
		return "writer"
	case RoleProducer:
		return "producer"
	case RoleAuthor:
		return "literary_credits"
	}
	return ""
}

// CreditRow is one entry of a film's role junction joined with people.
type CreditRow struct {
	FilmID   int64
	PersonID int64
	Name     string
	Position int
	RoleNote string
}

// ControlledTerm is one canonical vocabulary entry.
type ControlledTerm struct {
	ID         int64
	Term       string
	Facet      string
	ScopeNote  string // populated only when the column exists
	CreatedAt  time.Time
	UsageCount int // filled by usage queries, not stored
}

// Mapping links a raw AFI subject token to a controlled term.
type Mapping struct {
	ID         int64
	AFISubject string
	TermID     int64
	Confidence float64
	Notes      string
}

// TagAssignment is a weighted (film, term) association.
type TagAssignment struct {
	FilmID         int64
	TermID         int64
	Term           string
	Facet          string
	Weight         int
	AssignmentType string
}

// TableCount pairs a table name with its row count for status reports.
type TableCount struct {
	Table string
	Rows  int
}
