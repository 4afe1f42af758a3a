package validate

import "fmt"

// Code identifies a class of validation failure.
type Code string

const (
	CodeMissingField        Code = "missing_field"
	CodeDuplicateSegmentID  Code = "duplicate_segment_id"
	CodeUnknownSegmentID    Code = "unknown_segment_id"
	CodeSegmentsUnordered   Code = "segments_unordered"
	CodeNegativeTime        Code = "negative_time"
	CodeUnaccountedNumber   Code = "unaccounted_number"
	CodeUnknownOmittedNumber Code = "unknown_omitted_number"
	CodeConflictingCoverage Code = "conflicting_coverage"
)

// Error is one validation finding. Findings accumulate; a non-empty
// list is advisory until a caller treats it as a precondition failure.
type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string { return e.Message }

func missingField(field string) Error {
	return Error{CodeMissingField, fmt.Sprintf("missing required field: %s", field)}
}

func duplicateSegmentID(id string) Error {
	return Error{CodeDuplicateSegmentID, fmt.Sprintf("duplicate segment ID: %s", id)}
}

func unknownSegmentID(id string) Error {
	return Error{CodeUnknownSegmentID, fmt.Sprintf("timing overlay references unknown segment ID: %s", id)}
}

func segmentsUnordered(trackTitle string) Error {
	return Error{CodeSegmentsUnordered, fmt.Sprintf("segments not ordered by start time in track %q", trackTitle)}
}

func negativeTime(start float64) Error {
	return Error{CodeNegativeTime, fmt.Sprintf("segment time %vs is negative", start)}
}

func unaccountedNumber(id string) Error {
	return Error{CodeUnaccountedNumber, fmt.Sprintf("number %q is neither covered by any track nor declared as omitted", id)}
}

func unknownOmittedNumber(id string) Error {
	return Error{CodeUnknownOmittedNumber, fmt.Sprintf("omitted number %q does not exist in the base libretto", id)}
}

func conflictingCoverage(id string) Error {
	return Error{CodeConflictingCoverage, fmt.Sprintf("number %q is both covered by a track and declared as omitted", id)}
}
