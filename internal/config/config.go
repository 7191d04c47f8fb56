// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvConfigJSON names the environment variable holding a JSON document merged over the toml config.
const EnvConfigJSON = "BLOGIFIER_CONFIG_JSON"

const (
	defaultShutDownTime      = 5
	defaultSessionExpiry     = 24 * time.Hour
	defaultMinPasswordLength = 6
	defaultItemsPerPage      = 10
	defaultTheme             = "Simple"
	defaultThemesDir         = "./themes"
	defaultLoginURL          = "/error/401"
	maxItemsPerPage          = 100

	// RedactedValue replaces secrets in Redacted copies.
	RedactedValue = "********"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigFile(path + "main.toml")
	v.SetConfigType("toml")

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to merge config from "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// Redacted returns a copy of c with passwords and api keys masked, for printing.
func Redacted(c Config) Config {
	for _, secret := range []*string{&c.DB.Password, &c.Log.DataDog.APIKey, &c.Blog.SeedAdminPassword} {
		if *secret != "" {
			*secret = RedactedValue
		}
	}

	return c
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the service can not start without and fills defaults for the rest.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = GormEngineMySQL
	case GormEngineMySQL, GormEnginePostgres, GormEngineSQLite:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = defaultSessionExpiry
	}

	if c.Webserver.LoginURL == "" {
		c.Webserver.LoginURL = defaultLoginURL
	}

	if c.Blog.ThemesDir == "" {
		c.Blog.ThemesDir = defaultThemesDir
	}

	if c.Blog.MinPasswordLength == 0 {
		c.Blog.MinPasswordLength = defaultMinPasswordLength
	}

	if c.Blog.Defaults.Theme == "" {
		c.Blog.Defaults.Theme = defaultTheme
	}

	if c.Blog.Defaults.ItemsPerPage == 0 {
		c.Blog.Defaults.ItemsPerPage = defaultItemsPerPage
	}

	if c.Blog.Defaults.ItemsPerPage < 0 || c.Blog.Defaults.ItemsPerPage > maxItemsPerPage {
		return errors.Wrap(ErrItemsPerPageOutOfRange, invalidErrMessage)
	}

	return nil
}
