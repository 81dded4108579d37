package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed analysis run.
type ErrorKind string

const (
	EmptyInput      ErrorKind = "empty_input"
	MalformedJSON   ErrorKind = "malformed_json"
	AnalysisFailure ErrorKind = "analysis_failure"
)

var (
	ErrEmptyInput = errors.New("empty input: no content received on stdin")
	ErrNaNScore   = errors.New("sentiment score is not a number")
)

type analysisError struct {
	Kind ErrorKind
	Err  error
}

func (e *analysisError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

func (e *analysisError) Unwrap() error {
	return e.Err
}

func NewAnalysisError(kind ErrorKind, err error) error {
	return &analysisError{
		Kind: kind,
		Err:  err,
	}
}

func NewMalformedJSONError(err error) error {
	return NewAnalysisError(MalformedJSON, fmt.Errorf("malformed json: %w", err))
}

// KindOf returns the kind carried by err. Errors that were not raised through
// NewAnalysisError are reported as AnalysisFailure.
func KindOf(err error) ErrorKind {
	var analysisErr *analysisError
	if errors.As(err, &analysisErr) {
		return analysisErr.Kind
	}
	return AnalysisFailure
}

func IsKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}
