package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"jobdigest/internal/config"
	"jobdigest/internal/mail"
	"jobdigest/internal/pipeline"
	"jobdigest/internal/scheduler"
	"jobdigest/internal/scrape"
	"jobdigest/internal/store"
)

var (
	dryRun bool
	every  time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape all enabled sources and email the digest",
	RunE:  runRun,
}

func init() {
	for _, c := range []*cobra.Command{runCmd, rootCmd} {
		c.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be sent without recording or emailing anything")
		c.Flags().DurationVar(&every, "every", 0, "keep running, repeating the digest at this interval (e.g. 24h); 0 runs once")
	}
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg.Mail = config.LoadMailEnv()

	cfg, v := config.NormalizeAndValidate(cfg)
	for _, w := range v.Warnings {
		logger.Warn("config", "warning", w)
	}
	if !v.OK() {
		for _, e := range v.Errors {
			// dry runs never send mail, so missing credentials only warn
			if dryRun {
				logger.Warn("config", "warning", e)
			} else {
				logger.Error("config", "error", e)
			}
		}
		if !dryRun {
			os.Exit(1)
		}
	}

	dir := dataDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("failed to create data dir", "dir", dir, "error", err)
		os.Exit(1)
	}

	// One digest process per data dir; overlapping runs would double-send.
	lock := flock.New(filepath.Join(dir, "jobdigest.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		logger.Error("failed to acquire lock", "error", err)
		os.Exit(1)
	}
	if !locked {
		logger.Error("another jobdigest instance holds the lock, exiting", "dir", dir)
		os.Exit(1)
	}
	defer lock.Unlock()

	st, err := store.Open(filepath.Join(dir, "seen.db"))
	if err != nil {
		logger.Error("failed to open ledger", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	srcs := buildSources(cfg)
	logger.Info("config loaded",
		"sources", len(srcs),
		"cities", cfg.Filters.Cities,
		"max_results", cfg.MaxResults,
		"dry_run", dryRun,
	)

	fetcher := scrape.NewHTTPFetcher(time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second)
	delivery := mail.NewSMTP(mail.SMTPConfig{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Username:  cfg.Mail.Username,
		Password:  cfg.Mail.Password,
		Recipient: cfg.Mail.Recipient,
	})
	p := pipeline.New(cfg, fetcher, srcs, st, delivery, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	task := func(ctx context.Context) error {
		report, err := p.Run(ctx, dryRun)
		if err != nil {
			return err
		}
		logger.Info("run complete",
			"new_jobs", len(report.NewJobs),
			"delivered", report.Delivered,
		)
		return nil
	}

	if every > 0 {
		scheduler.Every(ctx, every, "digest", logger, task)
		return nil
	}

	if err := task(ctx); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
	return nil
}
