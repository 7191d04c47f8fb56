// Package fiber provides the zerolog based access log middleware of the web service.
package fiber

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/user135711/Blogifier/internal/logger"
)

const headerPerformance = "X-Performance"

// Config of the access log middleware.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	//
	// Optional. Default: nil
	Next func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError is set on responses the error handler could not render.
	//
	// Optional. Default: "max-age=0"
	CacheControlError string

	// CheckAliveURI is not logged when Config.DisableCheckAlive is set.
	CheckAliveURI string

	// UserName returns the signed in author of the request, if any.
	//
	// Optional. Default: nil
	UserName func(c *fiber.Ctx) string
}

// ConfigDefault is the default config.
var ConfigDefault = Config{ //nolint:gochecknoglobals
	CacheControlError: "max-age=0",
}

func configDefault(config ...Config) Config {
	if len(config) < 1 {
		return ConfigDefault
	}

	cfg := config[0]

	if cfg.CacheControlError == "" {
		cfg.CacheControlError = ConfigDefault.CacheControlError
	}

	return cfg
}

// New returns the access log middleware. Errors of later handlers are rendered here
// through the app error handler, so the logged status is the one sent to the client.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)

	accessLogger := zerolog.New(zerolog.MultiLevelWriter(accessWriters(&cfg.Config)...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)

	return func(ctx *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		start := time.Now()

		chainErr := ctx.Next()
		if chainErr != nil {
			if err := ctx.App().ErrorHandler(ctx, chainErr); err != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck
				ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
			}
		}

		elapsed := time.Since(start).Seconds()
		ctx.Response().Header.Set(headerPerformance, fmt.Sprintf("%f", elapsed))

		if cfg.Config.DisableCheckAlive && cfg.CheckAliveURI != "" && ctx.Path() == cfg.CheckAliveURI {
			return nil
		}

		event := accessLogger.Log().
			Str("IP", ctx.IP()).
			Int("status", ctx.Response().StatusCode()).
			Float64(headerPerformance, elapsed).
			Str("URI", requestURI(ctx)).
			Str("method", ctx.Method()).
			Bytes("host", ctx.Request().Host()).
			Str(fiber.HeaderXForwardedFor, ctx.Get(fiber.HeaderXForwardedFor)).
			Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent)).
			Str(fiber.HeaderReferer, ctx.Get(fiber.HeaderReferer))

		if cfg.UserName != nil {
			if user := cfg.UserName(ctx); user != "" {
				event.Str("user", user)
			}
		}

		event.Err(chainErr).Send()

		return nil
	}
}

// requestURI is the request path as received plus the raw query.
func requestURI(ctx *fiber.Ctx) string {
	query := ctx.Request().URI().QueryString()
	if len(query) == 0 {
		return ctx.Path()
	}

	return ctx.Path() + "?" + string(query)
}

// accessWriters returns the access log destinations, none at all disables the access log.
func accessWriters(cfg *logger.Log) []io.Writer {
	var writers []io.Writer

	if cfg.File.Enabled {
		if w := rollingAccessFile(cfg); w != nil {
			writers = append(writers, w)
		}
	}

	if !cfg.Console.Enabled || !cfg.EnableAccessLogToConsole {
		return writers
	}

	if !cfg.Console.UseConsoleWriter {
		return append(writers, os.Stdout)
	}

	return append(writers, zerolog.ConsoleWriter{
		Out:          os.Stdout,
		TimeFormat:   zerolog.TimeFieldFormat,
		PartsExclude: []string{zerolog.LevelFieldName},
	})
}

func rollingAccessFile(cfg *logger.Log) io.Writer {
	if cfg.File.Path != "" {
		if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil {
			log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")

			return nil
		}
	}

	return logger.NewRotateWriter(cfg.File.Path, cfg.File.Access)
}
