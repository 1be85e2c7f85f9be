package errhandler

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
)

// IsCancel reports whether err represents the operator aborting a prompt,
// either with ctrl-c in a survey prompt or by quitting a huh form.
func IsCancel(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) || strings.Contains(err.Error(), "user aborted")
}
