// Package materialize writes an asset set to disk and packages it into a zip
// archive.
//
// A run has three stages that execute strictly in sequence:
//
//  1. dirs: create every parent directory the asset paths need
//  2. write: create-or-truncate each asset file with its literal content
//  3. archive: store every written file in the archive under its relative path
//
// The first failing stage aborts the run, so a failed directory or write stage
// never produces an archive. Re-running is safe: directory creation is
// idempotent, writes overwrite, and archive entries carry a fixed timestamp so
// identical inputs yield a byte-identical archive.
package materialize
