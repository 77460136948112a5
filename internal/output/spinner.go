package output

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action behind a terminal spinner titled title. Without
// a terminal on stdout the action runs directly. Either way it runs exactly
// once, and its error is returned.
func RunWithSpinner(title string, action func() error) error {
	if !IsTTY() {
		return action()
	}

	var actionErr error
	if err := spinner.New().
		Title(title).
		Action(func() {
			actionErr = action()
		}).
		Run(); err != nil {
		return fmt.Errorf("spinner: %w", err)
	}
	return actionErr
}
