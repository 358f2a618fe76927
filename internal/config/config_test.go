package config

import (
	"errors"
	"flag"
	"io"
	"reflect"
	"testing"
	"time"

	apperrors "github.com/Jozeph555/coincalc/internal/errors"
)

var testAlgos = []string{"greedy", "optimal"}

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("coincalc", args, io.Discard, testAlgos)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if !reflect.DeepEqual(cfg.Amounts, DefaultAmounts) {
		t.Errorf("Amounts = %v, want %v", cfg.Amounts, DefaultAmounts)
	}
	if cfg.Algo != "all" {
		t.Errorf("Algo = %q, want %q", cfg.Algo, "all")
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %s, want %s", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Quiet || cfg.Verbose || cfg.TUI || cfg.NoColor {
		t.Error("boolean modes should default to false")
	}
	if cfg.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %q, want empty", cfg.MetricsAddr)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	cfg, err := parse(t,
		"--amounts", "7, 99 ,113",
		"--algo", "greedy",
		"--timeout", "30s",
		"--quiet",
		"--metrics-addr", ":9090",
	)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}
	if want := []int{7, 99, 113}; !reflect.DeepEqual(cfg.Amounts, want) {
		t.Errorf("Amounts = %v, want %v", cfg.Amounts, want)
	}
	if cfg.Algo != "greedy" {
		t.Errorf("Algo = %q, want %q", cfg.Algo, "greedy")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s, want 30s", cfg.Timeout)
	}
	if !cfg.Quiet {
		t.Error("Quiet should be set")
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("MetricsAddr = %q, want :9090", cfg.MetricsAddr)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown algo", []string{"--algo", "quantum"}},
		{"malformed amount", []string{"--amounts", "12,abc"}},
		{"empty amounts", []string{"--amounts", " , "}},
		{"positional args", []string{"113"}},
		{"non-positive timeout", []string{"--timeout", "0s"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(t, tc.args...)
			if err == nil {
				t.Fatal("ParseConfig() should fail")
			}
			var cerr apperrors.ConfigError
			if !errors.As(err, &cerr) {
				t.Errorf("want ConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	_, err := parse(t, "--help")
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("want flag.ErrHelp, got %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env applies when flag is absent", func(t *testing.T) {
		t.Setenv(EnvPrefix+"AMOUNTS", "5,10")
		t.Setenv(EnvPrefix+"ALGO", "optimal")
		t.Setenv(EnvPrefix+"TIMEOUT", "90s")
		t.Setenv(EnvPrefix+"QUIET", "yes")

		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if want := []int{5, 10}; !reflect.DeepEqual(cfg.Amounts, want) {
			t.Errorf("Amounts = %v, want %v", cfg.Amounts, want)
		}
		if cfg.Algo != "optimal" {
			t.Errorf("Algo = %q, want %q", cfg.Algo, "optimal")
		}
		if cfg.Timeout != 90*time.Second {
			t.Errorf("Timeout = %s, want 90s", cfg.Timeout)
		}
		if !cfg.Quiet {
			t.Error("Quiet should be set from env")
		}
	})

	t.Run("explicit flag wins over env", func(t *testing.T) {
		t.Setenv(EnvPrefix+"ALGO", "optimal")
		cfg, err := parse(t, "--algo", "greedy")
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.Algo != "greedy" {
			t.Errorf("Algo = %q, want flag value %q", cfg.Algo, "greedy")
		}
	})

	t.Run("invalid env value is ignored", func(t *testing.T) {
		t.Setenv(EnvPrefix+"TIMEOUT", "soon")
		cfg, err := parse(t)
		if err != nil {
			t.Fatalf("ParseConfig() error: %v", err)
		}
		if cfg.Timeout != DefaultTimeout {
			t.Errorf("Timeout = %s, want default %s", cfg.Timeout, DefaultTimeout)
		}
	})
}

func TestParseAmounts(t *testing.T) {
	t.Run("negative amounts pass through", func(t *testing.T) {
		// Validation of sign is the solvers' job, so the
		// ValidationError surfaces at solve time.
		got, err := ParseAmounts("-1,5")
		if err != nil {
			t.Fatalf("ParseAmounts() error: %v", err)
		}
		if want := []int{-1, 5}; !reflect.DeepEqual(got, want) {
			t.Errorf("ParseAmounts() = %v, want %v", got, want)
		}
	})
}
