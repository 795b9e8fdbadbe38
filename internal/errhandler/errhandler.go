package errhandler

import (
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsCancel reports whether err means the user backed out of a prompt
// rather than a real failure.
func IsCancel(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, huh.ErrUserAborted) ||
		errors.Is(err, terminal.InterruptErr) ||
		strings.Contains(err.Error(), "interrupt")
}

// HandleError reports a prompt-level error. A cancel ends the session
// gracefully; anything else is shown and the session continues.
func HandleError(err error) {
	if IsCancel(err) {
		pterm.Warning.Println("Operation cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(err)
}
