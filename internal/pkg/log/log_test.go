package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := SetOutput(buf)
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() {
		SetOutput(prev)
		color.NoColor = noColor
		SetDebug(false)
	})
	return buf
}

func TestInfoWithContext_IncludesRequestID(t *testing.T) {
	buf := capture(t)
	ctx := WithRequestID(context.Background(), "abc-123")

	InfoWithContext(ctx, "updated company %s", "acme")

	assert.Equal(t, "[INFO] [req_id=abc-123] updated company acme\n", buf.String())
}

func TestError_WithoutRequestID(t *testing.T) {
	buf := capture(t)

	ErrorWithContext(context.Background(), "boom %d", 1)

	assert.Equal(t, "[ERROR] boom 1\n", buf.String())
}

func TestDebug_Gated(t *testing.T) {
	buf := capture(t)

	Debug("hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debug("shown")
	assert.Equal(t, "[DEBUG] shown\n", buf.String())
}
