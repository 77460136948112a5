// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config, internal/cmd/template).
package cmdtypes

import (
	"github.com/opmodel/modgen/internal/config"
	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is allocated by the root command and passed into every sub-command
// constructor; fields are populated once flags have been parsed.
type GlobalConfig struct {
	// Config is the loaded global configuration with defaults applied.
	Config *config.Config

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// TemplatesDir is the resolved user template directory.
	TemplatesDir string

	// Output is the resolved summary format.
	Output output.OutputFormat

	Verbose bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
	ExitManifestError   = oerrors.ExitManifestError
	ExitRenderError     = oerrors.ExitRenderError
	ExitWriteError      = oerrors.ExitWriteError
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
