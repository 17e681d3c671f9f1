package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"jobdigest/internal/config"
	"jobdigest/internal/scrape"
	"jobdigest/internal/scrape/sources"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobdigest",
	Short: "Walk-in and e-commerce job digest",
	Long:  "jobdigest scrapes job boards for fresh walk-in and e-commerce listings and emails a daily digest of postings it has not reported before.",
	// Bare `jobdigest` runs a digest cycle, same as `jobdigest run`.
	RunE: runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBDIGEST_CONFIG env var or <data-dir>/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func setupLogger(dbg bool) *slog.Logger {
	level := slog.LevelInfo
	if dbg {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}

// dataDir resolves where the ledger, lock file and bootstrapped config live.
func dataDir() string {
	if d := os.Getenv("JOBDIGEST_DATA_DIR"); d != "" {
		return d
	}
	return "."
}

// loadConfig resolves the config path and parses it.
// Priority: --config flag > JOBDIGEST_CONFIG env var > bootstrapped
// <data-dir>/config.yml (seeded from ./config/config.yml on first run).
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		path = os.Getenv("JOBDIGEST_CONFIG")
	}
	if path == "" {
		dir := dataDir()
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return config.Config{}, err
		}
		var err error
		path, err = config.EnsureUserConfig(dir, filepath.Join("config", "config.yml"))
		if err != nil {
			return config.Config{}, err
		}
	}
	return config.Load(path)
}

// buildSources instantiates one extractor per enabled source, in the fixed
// order digests list them.
func buildSources(cfg config.Config) []scrape.Source {
	var out []scrape.Source
	s := cfg.Sources

	if s.Naukri.Enabled {
		out = append(out, sources.NewNaukri(s.Naukri.Query))
	}
	if s.LinkedIn.Enabled {
		out = append(out, sources.NewLinkedIn(s.LinkedIn.Query, s.LinkedIn.Location))
	}
	if s.Indeed.Enabled {
		out = append(out, sources.NewIndeed(s.Indeed.Query, s.Indeed.Location))
	}
	if s.Bing.Enabled {
		out = append(out, sources.NewBing(s.Bing.Query))
	}
	if s.Shine.Enabled {
		out = append(out, sources.NewShine(s.Shine.Query))
	}
	if s.Foundit.Enabled {
		out = append(out, sources.NewFoundit(s.Foundit.Query, s.Foundit.Location))
	}
	if s.Google.Enabled {
		out = append(out, sources.NewGoogle(s.Google.Query))
	}
	if s.TimesJobs.Enabled {
		out = append(out, sources.NewTimesJobs(s.TimesJobs.Query))
	}
	return out
}
