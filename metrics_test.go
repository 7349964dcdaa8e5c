package validkit_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validkit"
)

func TestLogReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	rep := validkit.LogReporter{Logger: logger}

	rep.ReportValid("Address", "street", "street")
	rep.ReportInvalid("Address", "zip", "zip_code")

	out := buf.String()
	assert.Contains(t, out, "field valid")
	assert.Contains(t, out, "field invalid")
	assert.Contains(t, out, "record=Address")
	assert.Contains(t, out, "field=zip")
	assert.Contains(t, out, "check=zip_code")
}

func TestNoopReporter(t *testing.T) {
	t.Parallel()

	// Must be usable as a Reporter and do nothing.
	var rep validkit.Reporter = validkit.NoopReporter{}
	rep.ReportValid("a", "b", "c")
	rep.ReportInvalid("a", "b", "c")
}
