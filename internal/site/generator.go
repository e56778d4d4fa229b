package site

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/nonmodernist/holreg-database/internal/credits"
	"github.com/nonmodernist/holreg-database/internal/export"
	"github.com/nonmodernist/holreg-database/internal/logging"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Generator renders the site's HTML from a data directory of exported JSON.
type Generator struct {
	dataDir   string
	outputDir string
	logger    *slog.Logger
	templates *template.Template
}

// Summary reports how many pages a generation run wrote.
type Summary struct {
	FilmPages   int
	AuthorPages int
	IndexPages  int
}

// New builds a generator reading from dataDir (the export output) and
// writing HTML under outputDir.
func New(dataDir, outputDir string, logger *slog.Logger) (*Generator, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	templates, err := template.New("site").Funcs(template.FuncMap{
		"slugify":  Slugify,
		"filmSlug": FilmSlug,
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse site templates: %w", err)
	}
	return &Generator{
		dataDir:   dataDir,
		outputDir: outputDir,
		logger:    logging.WithComponent(logger, "site"),
		templates: templates,
	}, nil
}

// GenerateAll renders every film page, author page, and both indexes.
func (g *Generator) GenerateAll() (*Summary, error) {
	var films []export.FilmDoc
	if err := g.loadJSON("films.json", &films); err != nil {
		return nil, err
	}
	var authors []export.AuthorDoc
	if err := g.loadJSON("authors.json", &authors); err != nil {
		return nil, err
	}
	var metadata export.MetadataDoc
	if err := g.loadJSON("metadata.json", &metadata); err != nil {
		return nil, err
	}

	for _, dir := range []string{"films", "authors"} {
		if err := os.MkdirAll(filepath.Join(g.outputDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("create site directory: %w", err)
		}
	}

	summary := &Summary{}
	filmsByID := make(map[int64]export.FilmDoc, len(films))
	for _, film := range films {
		filmsByID[film.ID] = film
	}

	for _, film := range films {
		if err := g.renderFilmPage(film, metadata); err != nil {
			return nil, err
		}
		summary.FilmPages++
	}
	for _, author := range authors {
		if err := g.renderAuthorPage(author, filmsByID, metadata); err != nil {
			return nil, err
		}
		summary.AuthorPages++
	}
	if err := g.renderFilmsIndex(films, metadata); err != nil {
		return nil, err
	}
	if err := g.renderAuthorsIndex(authors, metadata); err != nil {
		return nil, err
	}
	summary.IndexPages = 2

	g.logger.Info("site generated",
		logging.Int("film_pages", summary.FilmPages),
		logging.Int("author_pages", summary.AuthorPages),
		logging.String("dir", g.outputDir))
	return summary, nil
}

type facetGroup struct {
	Facet    string
	Subjects []export.SubjectDoc
}

type filmPage struct {
	Film           export.FilmDoc
	Slug           string
	Facets         []facetGroup
	StructuredData template.JS
	Metadata       export.MetadataDoc
}

func (g *Generator) renderFilmPage(film export.FilmDoc, metadata export.MetadataDoc) error {
	byFacet := make(map[string][]export.SubjectDoc)
	var order []string
	for _, subject := range film.ControlledSubjects {
		if _, ok := byFacet[subject.Facet]; !ok {
			order = append(order, subject.Facet)
		}
		byFacet[subject.Facet] = append(byFacet[subject.Facet], subject)
	}
	sort.Strings(order)
	facets := make([]facetGroup, 0, len(order))
	for _, facet := range order {
		facets = append(facets, facetGroup{Facet: facet, Subjects: byFacet[facet]})
	}

	structured, err := filmStructuredData(film)
	if err != nil {
		return err
	}
	page := filmPage{
		Film:           film,
		Slug:           FilmSlug(film.Title, film.ReleaseYear),
		Facets:         facets,
		StructuredData: structured,
		Metadata:       metadata,
	}
	return g.render("film.html.tmpl", filepath.Join("films", page.Slug+".html"), page)
}

// filmStructuredData builds the schema.org JSON-LD block for a film page.
func filmStructuredData(film export.FilmDoc) (template.JS, error) {
	doc := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "Movie",
		"name":          film.Title,
		"datePublished": fmt.Sprintf("%d", film.ReleaseYear),
	}
	// Structured data wants single person names, not the raw pipe-joined
	// credit strings.
	if director := credits.Primary(film.Director); director != "" {
		doc["director"] = map[string]any{"@type": "Person", "name": director}
	}
	if author := credits.Primary(film.LiteraryCredits); author != "" {
		doc["isBasedOn"] = map[string]any{
			"@type":  "Book",
			"author": map[string]any{"@type": "Person", "name": author},
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal structured data: %w", err)
	}
	return template.JS(data), nil
}

type authorPage struct {
	Author         export.AuthorDoc
	Films          []export.FilmDoc
	StructuredData template.JS
	Metadata       export.MetadataDoc
}

func (g *Generator) renderAuthorPage(author export.AuthorDoc, filmsByID map[int64]export.FilmDoc, metadata export.MetadataDoc) error {
	films := make([]export.FilmDoc, 0, len(author.Films))
	for _, ref := range author.Films {
		if film, ok := filmsByID[ref.ID]; ok {
			films = append(films, film)
		}
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ReleaseYear < films[j].ReleaseYear })

	structured, err := json.MarshalIndent(map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     author.Name,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal structured data: %w", err)
	}

	page := authorPage{
		Author:         author,
		Films:          films,
		StructuredData: template.JS(structured),
		Metadata:       metadata,
	}
	return g.render("author.html.tmpl", filepath.Join("authors", Slugify(author.Name)+".html"), page)
}

type decadeGroup struct {
	Decade int
	Films  []export.FilmDoc
}

type filmsIndexPage struct {
	Decades  []decadeGroup
	Total    int
	Metadata export.MetadataDoc
}

func (g *Generator) renderFilmsIndex(films []export.FilmDoc, metadata export.MetadataDoc) error {
	byDecade := make(map[int][]export.FilmDoc)
	for _, film := range films {
		decade := (film.ReleaseYear / 10) * 10
		byDecade[decade] = append(byDecade[decade], film)
	}
	decades := make([]int, 0, len(byDecade))
	for decade := range byDecade {
		decades = append(decades, decade)
	}
	sort.Ints(decades)

	groups := make([]decadeGroup, 0, len(decades))
	for _, decade := range decades {
		groups = append(groups, decadeGroup{Decade: decade, Films: byDecade[decade]})
	}
	page := filmsIndexPage{Decades: groups, Total: len(films), Metadata: metadata}
	return g.render("films_index.html.tmpl", filepath.Join("films", "index.html"), page)
}

type authorsIndexPage struct {
	Authors  []export.AuthorDoc
	Metadata export.MetadataDoc
}

func (g *Generator) renderAuthorsIndex(authors []export.AuthorDoc, metadata export.MetadataDoc) error {
	sorted := make([]export.AuthorDoc, len(authors))
	copy(sorted, authors)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	page := authorsIndexPage{Authors: sorted, Metadata: metadata}
	return g.render("authors_index.html.tmpl", filepath.Join("authors", "index.html"), page)
}

func (g *Generator) render(templateName, relPath string, data any) error {
	path := filepath.Join(g.outputDir, relPath)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", relPath, err)
	}
	if err := g.templates.ExecuteTemplate(file, templateName, data); err != nil {
		file.Close()
		return fmt.Errorf("render %s: %w", relPath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}

func (g *Generator) loadJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(g.dataDir, name))
	if err != nil {
		return fmt.Errorf("load site data %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode site data %s: %w", name, err)
	}
	return nil
}
