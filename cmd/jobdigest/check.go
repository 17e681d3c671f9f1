package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jobdigest/internal/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and credentials, then exit",
	Long:  "Loads the config file and mail environment, reports every error and warning, and lists the sources a run would scrape. Exits non-zero when the config could not sustain a run.",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	cfg.Mail = config.LoadMailEnv()
	cfg, v := config.NormalizeAndValidate(cfg)

	for _, e := range v.Errors {
		fmt.Printf("ERROR   %s\n", e)
	}
	for _, w := range v.Warnings {
		fmt.Printf("WARNING %s\n", w)
	}

	srcs := buildSources(cfg)
	fmt.Printf("\n%d source(s) enabled:\n", len(srcs))
	for _, s := range srcs {
		fmt.Printf("  %-10s %s\n", s.Name(), s.URL())
	}
	fmt.Printf("\nmail: %s -> %s via %s:%d\n",
		cfg.Mail.Username, cfg.Mail.Recipient, cfg.Mail.Host, cfg.Mail.Port)

	if !v.OK() {
		os.Exit(1)
	}
	fmt.Println("config OK")
	return nil
}
