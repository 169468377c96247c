package core

import (
	"errors"
	"fmt"
)

// Stage names the pipeline step that produced an error.
type Stage string

const (
	StageParse    Stage = "parse"
	StageValidate Stage = "validate"
	StagePersist  Stage = "persist"
)

var (
	// ErrEmptyInput means the source had no data rows (empty or header only).
	ErrEmptyInput = errors.New("empty input: no data rows")

	// ErrNoValidRows means the validator dropped every row.
	ErrNoValidRows = errors.New("no valid rows after validation")
)

// StageError wraps the error that stopped a pipeline stage.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// stageErr wraps err for stage. A nil err stays nil.
func stageErr(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

// StageOf returns the stage recorded in err, or "" if err carries none.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
