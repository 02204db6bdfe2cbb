package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
)

func TestLevelAndWriter(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(os.Stderr)

	SetLevel(logging.LogLevelError)
	quiet := NewLogger("test-quiet")
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())

	SetLevel(logging.LogLevelDebug)
	defer SetLevel(logging.LogLevelError)
	loud := NewLogger("test-loud")
	loud.Debugf("decoded %d bytes", 942)
	assert.Contains(t, buf.String(), "decoded 942 bytes")
	assert.Contains(t, buf.String(), "test-loud")

	// Existing loggers keep their level.
	buf.Reset()
	quiet.Debug("still hidden")
	assert.Empty(t, buf.String())
}
