// Package config resolves runtime settings from a .env file, the
// environment and command-line flags, in increasing precedence.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/bistro/internal/logger"
	"github.com/hammamikhairi/bistro/internal/storage"
)

// Environment variables read by Load.
const (
	EnvMenuFile      = "BISTRO_MENU_FILE"
	EnvCapacity      = "BISTRO_CAPACITY"
	EnvLogLevel      = "BISTRO_LOG_LEVEL"
	EnvLogFile       = "BISTRO_LOG_FILE"
	EnvSkipMalformed = "BISTRO_SKIP_MALFORMED"
	EnvDietProfiles  = "BISTRO_DIET_PROFILES"
)

// Defaults used when neither the environment nor a flag sets a value.
const (
	DefaultMenuFile = "menu.csv"
	DefaultLogFile  = ".bistro-logs/bistro.log"
	DefaultDiet     = "everything"
)

// Config holds everything main needs to wire the kitchen.
type Config struct {
	MenuFile      string
	Capacity      int // storage.Unbounded for no limit
	LogLevel      logger.Level
	LogFile       string // "stderr" logs to the console
	SkipMalformed bool
	ProfilesFile  string // optional YAML dietary profiles
	Diet          string // profile name or flag list applied in batch mode
	Interactive   bool
}

// Load reads .env (if present), then the environment, then parses args.
// A missing .env is not an error.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()
	return parse(args, os.Getenv, io.Discard)
}

func parse(args []string, getenv func(string) string, usage io.Writer) (*Config, error) {
	cfg := &Config{
		MenuFile:     firstNonEmpty(strings.TrimSpace(getenv(EnvMenuFile)), DefaultMenuFile),
		LogFile:      firstNonEmpty(strings.TrimSpace(getenv(EnvLogFile)), DefaultLogFile),
		ProfilesFile: strings.TrimSpace(getenv(EnvDietProfiles)),
		Capacity:     storage.Unbounded,
	}

	var err error
	if raw := strings.TrimSpace(getenv(EnvCapacity)); raw != "" {
		if cfg.Capacity, err = parseCapacity(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvCapacity, err)
		}
	}
	if cfg.LogLevel, err = logger.ParseLevel(getenv(EnvLogLevel)); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	if raw := strings.TrimSpace(getenv(EnvSkipMalformed)); raw != "" {
		if cfg.SkipMalformed, err = strconv.ParseBool(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvSkipMalformed, err)
		}
	}

	fs := flag.NewFlagSet("bistro", flag.ContinueOnError)
	fs.SetOutput(usage)
	menu := fs.String("menu", cfg.MenuFile, "CSV menu file to load")
	capacity := fs.Int("capacity", cfg.Capacity, "maximum number of dishes (0 for unbounded)")
	verbose := fs.Bool("verbose", false, "enable verbose/debug logging")
	quiet := fs.Bool("quiet", false, "disable all logging")
	logFile := fs.String("log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	skip := fs.Bool("skip-malformed", cfg.SkipMalformed, "skip malformed menu records instead of aborting the load")
	profiles := fs.String("profiles", cfg.ProfilesFile, "YAML file of dietary profiles")
	diet := fs.String("diet", DefaultDiet, "dietary profile or flag list applied in batch mode")
	interactive := fs.Bool("interactive", false, "start the interactive console")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *capacity < 0 {
		return nil, fmt.Errorf("capacity must not be negative, got %d", *capacity)
	}

	cfg.MenuFile = *menu
	cfg.Capacity = *capacity
	cfg.LogFile = *logFile
	cfg.SkipMalformed = *skip
	cfg.ProfilesFile = *profiles
	cfg.Diet = *diet
	cfg.Interactive = *interactive

	if *verbose {
		cfg.LogLevel = logger.LevelVerbose
	}
	if *quiet {
		cfg.LogLevel = logger.LevelOff
	}
	return cfg, nil
}

func parseCapacity(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative, got %d", n)
	}
	return n, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
