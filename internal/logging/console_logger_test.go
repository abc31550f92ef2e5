package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger_InfoGoesToStdout(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewConsoleLoggerWithWriters(false, &out, &errOut)

	l.Info("loading %s", "gnaf_address_detail")

	assert.Equal(t, "loading gnaf_address_detail\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestConsoleLogger_ErrorGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewConsoleLoggerWithWriters(false, &out, &errOut)

	l.Error("listing failed: %s", "no such directory")

	assert.Empty(t, out.String())
	assert.Equal(t, "[ERROR] listing failed: no such directory\n", errOut.String())
}

func TestConsoleLogger_VerboseSuppressedByDefault(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewConsoleLoggerWithWriters(false, &out, &errOut)

	l.Verbose("resolved host %s", "localhost")

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestConsoleLogger_VerboseEnabled(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewConsoleLoggerWithWriters(true, &out, &errOut)

	l.Verbose("resolved host %s", "localhost")

	assert.Equal(t, "[VERBOSE] resolved host localhost\n", errOut.String())
}

func TestNullLogger_Discards(t *testing.T) {
	l := NewNullLogger()
	// Must not panic; output is discarded.
	l.Verbose("v")
	l.Info("i")
	l.Error("e")
}
