package prompt

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/models"
)

var (
	// ErrNonInteractive is returned by prompts that cannot be shown
	ErrNonInteractive = errors.New("not running interactively")
	// ErrCanceled is returned when the user dismisses the checkpoint editor
	ErrCanceled = errors.New("checkpoint editor canceled")
)

// Prompter is the set of modal interactions a run may need.
type Prompter interface {
	PromptYesNo(question string) (bool, error)
	EditCheckpoints(current []models.Checkpoint) ([]models.Checkpoint, error)
}

// used by tests to fake a terminal
var isTerminalFunc = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Interactive resolves the configured mode against the current stdin.
func Interactive(mode constants.InteractiveMode) bool {
	switch mode {
	case constants.InteractiveAlways:
		return true
	case constants.InteractiveNever:
		return false
	default:
		return isTerminalFunc()
	}
}

// New returns the terminal prompter, or a silent one when mode rules out
// prompting.
func New(mode constants.InteractiveMode) Prompter {
	if Interactive(mode) {
		return NewHuhPrompter()
	}
	return NonInteractive{}
}

// NonInteractive never shows anything. Both prompts report ErrNonInteractive.
type NonInteractive struct{}

func (NonInteractive) PromptYesNo(string) (bool, error) {
	return false, ErrNonInteractive
}

func (NonInteractive) EditCheckpoints(current []models.Checkpoint) ([]models.Checkpoint, error) {
	return current, ErrNonInteractive
}
