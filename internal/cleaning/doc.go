// Package cleaning repairs formatting problems in collected catalog fields:
// stray catalog ids inside crew names, inconsistent pipe separators, and
// trailing whitespace. Cleaning is plan-then-apply so a researcher can review
// every change before anything is written.
package cleaning
