// Package store persists the research database in SQLite and exposes the
// relational operations every pipeline stage shares.
//
// The Store manages the connection, schema initialization, and an exclusive
// file lock: stages assume single-process access to the on-disk database and
// the lock turns a violated assumption into a clear error instead of silent
// interleaving. Film rows keep the raw free-text credit and subject fields
// from ingestion; the normalized people/junction tables and the controlled
// vocabulary tables are populated by later stages.
//
// Optional columns that researchers add by hand (survival status on films,
// scope notes on vocabulary terms) are probed once at open into a
// Capabilities struct; export code consults the struct rather than
// re-introspecting the schema.
//
// Treat this package as the single source of truth for relational semantics;
// schema changes go in schema.sql and bump schemaVersion.
package store
