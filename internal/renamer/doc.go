// Package renamer rewrites a term inside file contents and renames files and
// directories whose names contain it, walking a directory tree bottom-up so
// every item is processed before its parent directory is renamed.
package renamer
