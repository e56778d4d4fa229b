// Package site renders the static HTML pages for the research site from the
// exported JSON data: one page per film, one per author, and index pages for
// both. Pages are self-contained documents with inline styles so the output
// can be served from any static host.
package site
