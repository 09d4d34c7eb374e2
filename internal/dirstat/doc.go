// Package dirstat answers size queries over a directory tree rebuilt from a
// shell transcript.
//
// Run reads a transcript, rebuilds the tree with the transcript parser and
// aggregates it: total size, the sum of all small directories, the smallest
// directory whose removal frees enough space for an update, per-extension file
// statistics and the largest directories.
package dirstat
