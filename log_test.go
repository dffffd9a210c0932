package atomforge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewToolLoggerConsole(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewToolLogger(false, zapcore.AddSync(&buf))
	logger.Infof("compiled %d atoms", 3)
	assert.Contains(t, buf.String(), "compiled 3 atoms")
}

func TestNewToolLoggerJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewToolLogger(true, zapcore.AddSync(&buf))
	logger.Warnf("unknown atom (%d,%d)", 31, 255)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "unknown atom (31,255)")
}

func TestNewToolLoggerMultipleWriters(t *testing.T) {
	t.Parallel()
	var a, b bytes.Buffer
	logger := NewToolLogger(true, zapcore.AddSync(&a), zapcore.AddSync(&b))
	logger.Infof("teed")
	assert.Contains(t, a.String(), "teed")
	assert.Equal(t, a.String(), b.String())
}
