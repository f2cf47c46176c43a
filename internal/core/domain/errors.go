package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFoundPath is returned when an explicitly listed file does not exist.
	ErrNotFoundPath = zerr.New("file not found")

	// ErrNotEnoughFiles is returned when fewer than two distinct files remain to be compared.
	ErrNotEnoughFiles = zerr.New("you need at least 2 files to be compared")

	// ErrEmptySearchPath is returned when no explicit files and no search path were given.
	ErrEmptySearchPath = zerr.New("search path can't be empty")

	// ErrInvalidSearchPath is returned when the search path is missing or is not a directory.
	ErrInvalidSearchPath = zerr.New("search path should exist and be a directory")

	// ErrInvalidSearchPattern is returned when the file name pattern is not a valid regular expression.
	ErrInvalidSearchPattern = zerr.New("invalid search pattern")

	// ErrRuleLoadFailed is returned when the ignore rule source exists but cannot be read or parsed.
	ErrRuleLoadFailed = zerr.New("failed to load ignore rules")

	// ErrInvalidRulePattern is returned when an ignore rule pattern is not a valid regular expression.
	ErrInvalidRulePattern = zerr.New("invalid ignore rule pattern")

	// ErrMalformedDocument is returned when a compared file is not a JSON object.
	ErrMalformedDocument = zerr.New("document is not a valid JSON object")

	// ErrDocumentReadFailed is returned when a compared file cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrPathStatFailed is returned when stating a path fails for a reason other than absence.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrDirectoryListFailed is returned when the search path cannot be listed.
	ErrDirectoryListFailed = zerr.New("failed to list directory")

	// ErrDriftDetected is returned when at least one file is missing keys found in its siblings.
	ErrDriftDetected = zerr.New("differences found in files")

	// ErrInvalidOutputFormat is returned when an unknown report format is requested.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'text' or 'json'")

	// ErrReportRenderFailed is returned when the report cannot be written.
	ErrReportRenderFailed = zerr.New("failed to render report")
)
