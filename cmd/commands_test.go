package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jywlabs/namegame/internal/config"
	"github.com/jywlabs/namegame/internal/template"
)

func TestRunVowel(t *testing.T) {
	tests := []struct {
		word     string
		expected string
	}{
		{"hat", "1\n"},
		{"grrm", "-1\n"},
		{"sky", "2\n"},
		{"year", "1\n"},
		{"y", "-1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			var out bytes.Buffer
			runVowel(&out, config.StylePlain, tt.word)
			if out.String() != tt.expected {
				t.Errorf("got %q, want %q", out.String(), tt.expected)
			}
		})
	}
}

func TestRunInit(t *testing.T) {
	t.Run("creates config", func(t *testing.T) {
		dir := t.TempDir()
		var out bytes.Buffer

		if err := runInit(dir, &out); err != nil {
			t.Fatalf("runInit returned error: %v", err)
		}

		content, err := os.ReadFile(filepath.Join(dir, template.ConfigDir, template.ConfigFile))
		if err != nil {
			t.Fatalf("config not written: %v", err)
		}
		if string(content) != template.DefaultConfig {
			t.Error("written config differs from the embedded default")
		}
		if !strings.Contains(out.String(), "Initialized .namegame/") {
			t.Errorf("unexpected output: %s", out.String())
		}

		cfg, err := config.LoadWithEnv(dir, map[string]string{})
		if err != nil {
			t.Fatalf("written config does not load: %v", err)
		}
		if cfg.Path == "" {
			t.Error("expected config to be read from file")
		}
	})

	t.Run("refuses existing directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, template.ConfigDir), 0755); err != nil {
			t.Fatalf("failed to create config dir: %v", err)
		}

		err := runInit(dir, &bytes.Buffer{})
		if err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Fatalf("error = %v, want already exists", err)
		}
	})
}

func TestRunConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var out bytes.Buffer
		if err := runConfig(&out, nil); err != nil {
			t.Fatalf("runConfig returned error: %v", err)
		}
		for _, want := range []string{"using defaults", "noVowel: empty", "style: auto"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("output missing %q:\n%s", want, out.String())
			}
		}
	})

	t.Run("from file", func(t *testing.T) {
		cfg := config.Default()
		cfg.Path = "/tmp/x/.namegame/config.yaml"
		cfg.NoVowel = "reject"

		var out bytes.Buffer
		if err := runConfig(&out, &cfg); err != nil {
			t.Fatalf("runConfig returned error: %v", err)
		}
		if !strings.Contains(out.String(), "Configuration file: /tmp/x/.namegame/config.yaml") {
			t.Errorf("output missing path:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "noVowel: reject") {
			t.Errorf("output missing policy:\n%s", out.String())
		}
	})
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(dir, "debug", "json")
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("got level=%q format=%q", cfg.LogLevel, cfg.LogFormat)
	}

	if _, err := loadConfig(dir, "loud", ""); err == nil {
		t.Error("expected invalid log level to fail")
	}
}

func TestPrintError(t *testing.T) {
	err := errors.New("name is empty")

	t.Run("plain config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Style = config.StylePlain

		var out bytes.Buffer
		printError(&out, &cfg, err)
		if out.String() != "error: name is empty\n" {
			t.Errorf("got %q", out.String())
		}
	})

	t.Run("color config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Style = config.StyleColor

		var out bytes.Buffer
		printError(&out, &cfg, err)
		if !strings.Contains(out.String(), "\x1b[") {
			t.Errorf("expected ANSI styling, got %q", out.String())
		}
		if !strings.Contains(out.String(), "error: name is empty") {
			t.Errorf("missing message, got %q", out.String())
		}
	})

	t.Run("no config falls back to auto", func(t *testing.T) {
		var out bytes.Buffer
		printError(&out, nil, err)
		if out.String() != "error: name is empty\n" {
			t.Errorf("got %q", out.String())
		}
	})
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	printVersion(&out)
	if !strings.HasPrefix(out.String(), "namegame dev\n") {
		t.Errorf("unexpected version output: %q", out.String())
	}
}

func TestRootCommand_Verse(t *testing.T) {
	tmp := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"verse", "Felix", "--style", "plain"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		verseStyleFlag = ""
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	want := "Felix!\nFelix, Felix, bo-belix\nBanana-fana fo-elix\nFi-Fi mo-melix\nFelix!\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}
