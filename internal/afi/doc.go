// Package afi talks to the American Film Institute catalog's search endpoint
// and lands exact title/year matches in the research database. The catalog has
// no published API; the client speaks the same form-encoded search request the
// catalog's own web frontend sends.
package afi
