package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogging_DefaultInfoLevel(t *testing.T) {
	SetupLogging(LogConfig{})
	assert.Equal(t, log.InfoLevel, Logger().GetLevel(), "default should be info level")
}

func TestSetupLogging_VerboseEnablesDebugLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, Logger().GetLevel(), "verbose should set debug level")
}

func TestSetupLogging_TimestampExplicitlyDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Timestamps: BoolPtr(false), Writer: &buf})
	Info("hello")

	out := strings.TrimSpace(buf.String())
	assert.Contains(t, out, "hello")
	assert.NotRegexp(t, `^\d{2}:\d{2}:\d{2}`, out, "output should not start with a timestamp")
}

func TestSetupLogging_DefaultTimestampsOn(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Writer: &buf})
	Info("hello")

	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}`, strings.TrimSpace(buf.String()))
}

func TestSetupLogging_DebugHiddenByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetupLogging(LogConfig{Writer: &buf})
	Debug("quiet")

	assert.Empty(t, buf.String())
}

func TestModuleLogger_HasPrefix(t *testing.T) {
	SetupLogging(LogConfig{})
	modLog := ModuleLogger("Login")

	assert.Contains(t, modLog.GetPrefix(), "Login", "prefix should contain module name")
}

func TestModuleLogger_InheritsLevel(t *testing.T) {
	SetupLogging(LogConfig{Verbose: true})
	assert.Equal(t, log.DebugLevel, ModuleLogger("Login").GetLevel())
}

func TestBoolPtr(t *testing.T) {
	assert.True(t, *BoolPtr(true))
	assert.False(t, *BoolPtr(false))
}
