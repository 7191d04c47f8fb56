package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/user135711/Blogifier/internal/logger/adapter/fiber"

	"github.com/user135711/Blogifier/internal/logger"
)

// accessLogLine implements the access log json format.
type accessLogLine struct {
	IP     net.IP `json:"IP"`
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Host   string `json:"host"`
	User   string `json:"user"`
}

func consoleConfig() logger.Log {
	return logger.Log{
		EnableAccessLogToConsole: true,
		DisableCheckAlive:        true,
		Console:                  logger.Console{Enabled: true},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		config     adapter.Config
		targetPath string
		want       *accessLogLine
	}{
		{
			name:       "empty config no output at all",
			targetPath: "/settings",
		},
		{
			name:       "get /settings log to console json",
			targetPath: "/settings",
			config:     adapter.Config{Config: consoleConfig()},
			want: &accessLogLine{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusOK,
				URI:    "/settings",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "unknown path with query",
			targetPath: "/settings//users?page=2",
			config:     adapter.Config{Config: consoleConfig()},
			want: &accessLogLine{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusNotFound,
				URI:    "/settings//users?page=2",
				Method: fiber.MethodGet,
				Host:   "example.com",
			},
		},
		{
			name:       "signed in author is logged",
			targetPath: "/settings",
			config: adapter.Config{
				Config: consoleConfig(),
				UserName: func(_ *fiber.Ctx) string {
					return "admin"
				},
			},
			want: &accessLogLine{
				IP:     net.ParseIP("0.0.0.0"),
				Status: fiber.StatusOK,
				URI:    "/settings",
				Method: fiber.MethodGet,
				Host:   "example.com",
				User:   "admin",
			},
		},
		{
			name:       "check alive is not logged",
			targetPath: "/checkalive",
			config: adapter.Config{
				Config:        consoleConfig(),
				CheckAliveURI: "/checkalive",
			},
		},
		{
			name:       "skipped by next",
			targetPath: "/settings",
			config: adapter.Config{
				Config: consoleConfig(),
				Next: func(_ *fiber.Ctx) bool {
					return true
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, performance := serveAndCapture(t, tt.targetPath, tt.config)

			if tt.want == nil {
				assert.Empty(t, output)

				return
			}

			require.NotEmpty(t, output)
			assert.NotEmpty(t, performance)

			var got accessLogLine
			require.NoError(t, json.Unmarshal([]byte(output), &got))

			assert.Equal(t, tt.want.Host, got.Host)
			assert.Equal(t, tt.want.Method, got.Method)
			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.IP, got.IP)
			assert.Equal(t, tt.want.URI, got.URI)
			assert.Equal(t, tt.want.User, got.User)
		})
	}
}

func serveAndCapture(t *testing.T, targetPath string, adapterConfig adapter.Config) (string, string) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	app := fiber.New(fiber.Config{
		CaseSensitive: true,
		Immutable:     true,
	})

	app.Use(adapter.New(adapterConfig))

	app.Get("/settings", func(ctx *fiber.Ctx) error {
		return ctx.SendString("settings")
	})

	app.Get("/checkalive", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, targetPath, nil), -1)

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

	return out, resp.Header.Get("X-Performance")
}
