// Package errors reports the failures that end a run, tagged with the stage
// of the run they came from.
package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/yeargrid/internal/logger"
)

// Stage names the step of a run that failed.
type Stage string

const (
	StageConfig  Stage = "load config"
	StagePalette Stage = "parse palette"
	StageStorage Stage = "open storage"
	StageRun     Stage = "run"
)

var hints = map[Stage]string{
	StageConfig:  "check the config file and YEARGRID_* variables",
	StagePalette: "palette colors are hex values like #1e293b",
	StageStorage: "check data_dir and that the storage backend is readable",
}

// StageError wraps an error with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	if e.Stage == StageRun {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Wrap tags err with stage. A nil err stays nil and an already tagged error
// keeps its original stage.
func Wrap(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	var se *StageError
	if stderrors.As(err, &se) {
		return err
	}
	return &StageError{Stage: stage, Err: err}
}

// Format renders err for the terminal with an "Error: " prefix and, for
// stages that have one, a hint line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	var se *StageError
	if stderrors.As(err, &se) {
		if hint, ok := hints[se.Stage]; ok {
			msg += "\nHint: " + hint
		}
	}
	return msg
}

// Fatal logs err under stage, prints it and exits with code 1. It does
// nothing when err is nil.
func Fatal(stage Stage, err error) {
	if err == nil {
		return
	}
	err = Wrap(stage, err)
	var se *StageError
	stderrors.As(err, &se)
	logger.Error("Run failed", "stage", string(se.Stage), "error", se.Err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}
