// Package credits parses the free-text, pipe-delimited credit fields the AFI
// catalog attaches to film records.
//
// A credit field holds zero or more person names in billing order, and a name
// may be followed by a numeric AFI person identifier ("Louis King|101085").
// Parse preserves input order and never fails: malformed input simply yields
// no credits, which callers treat as a valid state.
//
// SearchKey derives a lossy lowercase key for fuzzy lookup. It is never used
// for identity; people are deduplicated by exact name string only.
package credits
