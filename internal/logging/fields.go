package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldDuration   = "duration"

	// Configuration fields.
	FieldFormat  = "format"
	FieldColor   = "color"
	FieldHeading = "heading"
	FieldLocate  = "location"
	FieldVerbose = "verbosity"
	FieldSort    = "sort"
	FieldJobs    = "jobs"

	// Statistics fields.
	FieldDocuments       = "documents"
	FieldExaminers       = "examiners"
	FieldSmellyExaminers = "smelly_examiners"
	FieldWarnings        = "warnings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
