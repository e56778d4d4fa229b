// Package export flattens the relational research database into the JSON
// documents the static site consumes. Every export is a full rebuild; the
// output directory is treated as disposable.
package export
