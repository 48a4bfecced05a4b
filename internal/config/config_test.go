package config

import (
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/screen-generator/internal/store"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.SettingsPath != DefaultSettingsPath {
		t.Fatalf("expected default settings path, got %q", cfg.App.SettingsPath)
	}
	if cfg.App.StoreKind != store.KindAuto {
		t.Fatalf("expected auto store, got %q", cfg.App.StoreKind)
	}
	if cfg.App.SaveInterval != defaultSaveInterval {
		t.Fatalf("expected default save interval, got %s", cfg.App.SaveInterval)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer on by default")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace off by default")
	}
}

func TestLoadArgsEnvironmentFallbacks(t *testing.T) {
	env := []string{
		envSettingsPath + "=/tmp/settings.toml",
		envStoreKind + "=TOML",
		envSaveInterval + "=1s",
		envWidth + "=120",
		envHeight + "=40",
		envShowFooter + "=false",
		envTrace + "=1",
		envLogFile + "=/tmp/sg.log",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.SettingsPath != "/tmp/settings.toml" || cfg.App.StoreKind != store.KindTOML {
		t.Fatalf("unexpected store config %#v", cfg.App)
	}
	if cfg.App.SaveInterval != time.Second {
		t.Fatalf("expected 1s save interval, got %s", cfg.App.SaveInterval)
	}
	if cfg.App.Width != 120 || cfg.App.Height != 40 {
		t.Fatalf("unexpected size %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled from env")
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/sg.log" {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{envStoreKind + "=toml", envWidth + "=120"}
	args := []string{"-store", "sqlite", "-settings", "settings.db", "-width", "80"}
	cfg, err := LoadArgs(args, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.StoreKind != store.KindSQLite {
		t.Fatalf("expected sqlite store, got %q", cfg.App.StoreKind)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected width 80, got %d", cfg.App.Width)
	}
	if cfg.Flags["store"] != "sqlite" || cfg.Flags["settings"] != "settings.db" {
		t.Fatalf("unexpected flags %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args to be recorded, got %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresUnparsableEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{envWidth + "=wide", envTrace + "=maybe", envSaveInterval + "=soon"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 || cfg.Logging.Trace || cfg.App.SaveInterval != defaultSaveInterval {
		t.Fatalf("expected fallbacks, got %#v / %#v", cfg.App, cfg.Logging)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"negative width", []string{"-width", "-1"}},
		{"negative height", []string{"-height", "-3"}},
		{"negative interval", []string{"-save-interval", "-1s"}},
		{"unknown flag", []string{"-socket", "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadArgs(tc.args, nil); err == nil {
				t.Fatalf("expected error for %v", tc.args)
			}
		})
	}
}

func TestLoadArgsRejectsUnknownStore(t *testing.T) {
	_, err := LoadArgs([]string{"-store", "xml"}, nil)
	if !errors.Is(err, store.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestValidateRequiresSettingsPath(t *testing.T) {
	cfg, err := LoadArgs([]string{"-settings", " "}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected blank settings path to fail validation")
	}
	cfg.App.StoreKind = store.KindMemory
	if err := Validate(cfg); err != nil {
		t.Fatalf("memory store needs no path: %v", err)
	}
}
