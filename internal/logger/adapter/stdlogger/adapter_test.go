package stdlogger_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user135711/Blogifier/internal/logger"
	"github.com/user135711/Blogifier/internal/logger/adapter/stdlogger"
)

func TestAdapter(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         logger.Log
		contains    []string
		notContains []string
	}{
		{
			name: "no logger enabled log level not set",
			cfg: logger.Log{
				ServiceName: "admin",
				AppName:     "blogifier",
			},
		},
		{
			name: "info level shows printf",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "admin",
				AppName:     "blogifier",
				Console:     logger.Console{Enabled: true},
			},
			contains:    []string{"test printf", `"component":"gorm"`, "plain printf"},
			notContains: []string{`"component":""`},
		},
		{
			name: "warn level hides printf",
			cfg: logger.Log{
				LogLevel:    "warn",
				ServiceName: "admin",
				AppName:     "blogifier",
				Console:     logger.Console{Enabled: true},
			},
			notContains: []string{"test printf", "plain printf"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := captureOutput(t, tc.cfg)

			if len(tc.contains) == 0 && len(tc.notContains) == 0 {
				assert.Empty(t, out)
			}

			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}

			for _, s := range tc.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func captureOutput(t *testing.T, cfg logger.Log) string {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	err := logger.Init(cfg)

	testLogger := stdlogger.New()

	testLogger.WithComponent("gorm").Printf("stdlogger %s", "test printf")
	testLogger.Printf("stdlogger %s", "plain printf")

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout
	os.Stderr = stderr
	out := <-outC

	require.NoError(t, err)

	return out
}
