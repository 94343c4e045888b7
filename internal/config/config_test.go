package config

import (
	"io"
	"strings"
	"testing"

	"github.com/hammamikhairi/bistro/internal/logger"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(nil, envFrom(nil), io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := Config{
		MenuFile: DefaultMenuFile,
		LogFile:  DefaultLogFile,
		LogLevel: logger.LevelNormal,
		Diet:     DefaultDiet,
	}
	if *cfg != want {
		t.Fatalf("got %+v, want %+v", *cfg, want)
	}
}

func TestParseEnvironment(t *testing.T) {
	env := envFrom(map[string]string{
		EnvMenuFile:      "dishes.csv",
		EnvCapacity:      " 12 ",
		EnvLogLevel:      "debug",
		EnvLogFile:       "stderr",
		EnvSkipMalformed: "true",
		EnvDietProfiles:  "diets.yaml",
	})

	cfg, err := parse(nil, env, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.MenuFile != "dishes.csv" || cfg.Capacity != 12 || cfg.LogFile != "stderr" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != logger.LevelVerbose || !cfg.SkipMalformed || cfg.ProfilesFile != "diets.yaml" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	env := envFrom(map[string]string{
		EnvMenuFile:      "dishes.csv",
		EnvCapacity:      "12",
		EnvSkipMalformed: "true",
	})
	args := []string{"-menu", "other.csv", "-capacity", "3", "-skip-malformed=false", "-quiet", "-diet", "vegan", "-interactive"}

	cfg, err := parse(args, env, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.MenuFile != "other.csv" || cfg.Capacity != 3 || cfg.SkipMalformed {
		t.Fatalf("flags did not override: %+v", cfg)
	}
	if cfg.LogLevel != logger.LevelOff || cfg.Diet != "vegan" || !cfg.Interactive {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		want string
	}{
		{"capacity not a number", map[string]string{EnvCapacity: "lots"}, nil, EnvCapacity},
		{"negative capacity env", map[string]string{EnvCapacity: "-1"}, nil, EnvCapacity},
		{"negative capacity flag", nil, []string{"-capacity", "-4"}, "negative"},
		{"bad log level", map[string]string{EnvLogLevel: "loud"}, nil, EnvLogLevel},
		{"bad bool", map[string]string{EnvSkipMalformed: "sometimes"}, nil, EnvSkipMalformed},
		{"unknown flag", nil, []string{"-colour"}, "colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(tt.args, envFrom(tt.env), io.Discard)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}
