// Package domain holds the core types of keydiff: ignore rules, key contents and drift reports.
package domain

const (
	// DefaultIgnoreFile is the ignore rule file looked up in the working directory.
	DefaultIgnoreFile = ".json-diff-ignore.json"

	// DefaultSearchPattern matches file names with a .json extension.
	DefaultSearchPattern = `\.json$`

	// MinComparableFiles is the smallest file set that can be compared.
	MinComparableFiles = 2
)
