package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/wring/internal/domain/validation"
)

// Floor for enabled autosave intervals.
const minAutosaveIntervalMs = 100

// validateConfig reports every problem in cfg as a single error.
func validateConfig(cfg *Config) error {
	var errs []string
	errs = append(errs, validateWorkspaces(cfg)...)
	errs = append(errs, validateAppearance(cfg)...)
	errs = append(errs, validateLogging(cfg)...)
	errs = append(errs, validateSession(cfg)...)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid config:\n  - %s", strings.Join(errs, "\n  - "))
}

func validateWorkspaces(cfg *Config) []string {
	var errs []string
	if len(cfg.Workspaces) == 0 {
		errs = append(errs, "workspaces must have at least one entry")
	}

	seen := make(map[string]int, len(cfg.Workspaces))
	for i, name := range cfg.Workspaces {
		field := fmt.Sprintf("workspaces[%d]", i)
		errs = append(errs, domainvalidation.ValidateWorkspaceName(field, name)...)
		if prev, dup := seen[name]; dup {
			errs = append(errs, fmt.Sprintf("duplicate workspace name %q at positions %d and %d", name, prev, i))
		}
		seen[name] = i
	}
	return errs
}

func validateAppearance(cfg *Config) []string {
	s := cfg.Appearance.ColorScheme
	errs := domainvalidation.ValidateSchemeHex(
		"appearance.color_scheme",
		s.Background,
		s.Foreground1,
		s.Foreground2,
		s.Foreground3,
		s.Highlight,
		s.Urgent,
	)

	pixels := []struct {
		field string
		value int
	}{
		{"appearance.border_px", cfg.Appearance.BorderPx},
		{"appearance.gap_px", cfg.Appearance.GapPx},
		{"appearance.bar_height_px", cfg.Appearance.BarHeightPx},
	}
	for _, p := range pixels {
		if p.value < 0 {
			errs = append(errs, p.field+" must not be negative")
		}
	}
	return errs
}

func validateLogging(cfg *Config) []string {
	var errs []string

	switch cfg.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error", "fatal":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not a known level", cfg.Logging.Level))
	}

	switch cfg.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q is not console or json", cfg.Logging.Format))
	}
	return errs
}

func validateSession(cfg *Config) []string {
	var errs []string

	switch interval := cfg.Session.AutosaveIntervalMs; {
	case interval < 0:
		errs = append(errs, "session.autosave_interval_ms must not be negative")
	case interval > 0 && interval < minAutosaveIntervalMs:
		errs = append(errs, fmt.Sprintf(
			"session.autosave_interval_ms below %dms, use 0 to disable autosave", minAutosaveIntervalMs,
		))
	}

	if cfg.Session.MaxSnapshots < 0 {
		errs = append(errs, "session.max_snapshots must not be negative")
	}
	return errs
}
