package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"gdpchart/internal/dataset"
)

// Config is the runtime configuration shared by every subcommand.
type Config struct {
	DataURL       string
	Addr          string
	Env           string
	LogFile       string
	ViewportWidth int
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		DataURL:       dataset.DefaultURL,
		Addr:          ":8000",
		Env:           "development",
		ViewportWidth: 1280,
	}
}

// Load reads an optional .env file and then the GDPCHART_* variables.
// A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return Config{}, errors.Wrap(err, "load .env")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv applies environment overrides on top of Defaults.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Defaults()
	if v, ok := lookup("GDPCHART_DATA_URL"); ok && v != "" {
		c.DataURL = v
	}
	if v, ok := lookup("GDPCHART_ADDR"); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup("GDPCHART_ENV"); ok && v != "" {
		c.Env = v
	}
	if v, ok := lookup("GDPCHART_LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookup("GDPCHART_VIEWPORT_WIDTH"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, errors.Errorf("GDPCHART_VIEWPORT_WIDTH: invalid width %q", v)
		}
		c.ViewportWidth = n
	}
	return c, nil
}
