package afi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Document is one film record from a catalog search response. Field names
// follow the catalog's own JSON.
type Document struct {
	MovieID             string     `json:"MovieId"`
	MovieName           string     `json:"MovieName"`
	ReleaseYear         FlexString `json:"ReleaseYear"`
	ReleaseDate         string     `json:"ReleaseDate"`
	Director            string     `json:"Director"`
	DirectorID          string     `json:"DirectorId"`
	Writer              string     `json:"Writer"`
	Producer            string     `json:"Producer"`
	Genre               StringList `json:"Genre"`
	SubGenre            string     `json:"SubGenre"`
	FilmType            string     `json:"FilmType"`
	Subjects            StringList `json:"Subjects"`
	LiteraryNoteCredits string     `json:"LiteraryNoteCredits"`
	SourceCitations     string     `json:"SourceCitations"`
	NoteGeo             string     `json:"NoteGeo"`
	ProductionCompany   StringList `json:"ProductionCompany"`
	DistributionCompany StringList `json:"DistributionCompany"`
}

// Result wraps one search hit.
type Result struct {
	Document Document `json:"Document"`
}

// MovieSearch is the movie-results section of a search payload.
type MovieSearch struct {
	Results []Result `json:"Results"`
}

// SearchResponse models the catalog's nested search payload.
type SearchResponse struct {
	MovieSearch MovieSearch `json:"MovieSearch"`
}

// Documents flattens the response's result wrappers.
func (r *SearchResponse) Documents() []Document {
	docs := make([]Document, 0, len(r.MovieSearch.Results))
	for _, result := range r.MovieSearch.Results {
		docs = append(docs, result.Document)
	}
	return docs
}

// FlexString tolerates catalog fields that arrive as either a JSON string or
// a bare number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// StringList tolerates catalog fields that arrive as either a JSON array or a
// single string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*l = values
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = []string{s}
	return nil
}

// Joined renders the list in the pipe-separated form the database stores.
func (l StringList) Joined() string {
	return strings.Join(l, "|")
}

// Searcher defines the catalog operation collection depends on.
type Searcher interface {
	Search(ctx context.Context, title string) (*SearchResponse, error)
}

// Client searches the AFI catalog.
type Client struct {
	http *resty.Client
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying resty client, mainly for tests.
func WithHTTPClient(client *resty.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// New creates a catalog client. The browser-shaped headers matter: the search
// endpoint serves HTML instead of JSON without them.
func New(baseURL, userAgent string, timeout time.Duration, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("afi base url required")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("User-Agent", userAgent).
			SetHeader("Accept", "*/*").
			SetHeader("X-Requested-With", "XMLHttpRequest").
			SetHeader("Referer", baseURL+"/Search"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Search posts a title query against the catalog's movie-name index and
// returns the full result page.
func (c *Client) Search(ctx context.Context, title string) (*SearchResponse, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("search title must not be empty")
	}

	var payload SearchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"searchText":             title,
			"searchField":            "MovieName",
			"directorFacet":          "",
			"producerFacet":          "",
			"releaseYearFacet":       "",
			"productionCompanyFacet": "",
			"genreFacet":             "",
			"filmTypeFacet":          "",
			"moviesOnly":             "true",
			"peopleOnly":             "false",
			"sortType":               "sortByRelevance",
			"currentPage":            "1",
			"searchId":               "",
			"logSearch":              "false",
			"isCompact":              "false",
		}).
		SetResult(&payload).
		Post("/Search/Search")
	if err != nil {
		return nil, fmt.Errorf("execute catalog search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog search returned %d", resp.StatusCode())
	}
	return &payload, nil
}
