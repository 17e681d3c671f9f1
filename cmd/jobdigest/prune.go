package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"jobdigest/internal/store"
)

var pruneOlderThan time.Duration

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Drop old entries from the seen-listing ledger",
	Long:  "Deletes ledger entries first seen longer ago than --older-than. Pruned listings will be reported again if a board still shows them, so keep the window comfortably longer than postings stay live.",
	RunE:  runPrune,
}

func init() {
	pruneCmd.Flags().DurationVar(&pruneOlderThan, "older-than", 90*24*time.Hour, "drop entries first seen longer ago than this")
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	st, err := store.Open(filepath.Join(dataDir(), "seen.db"))
	if err != nil {
		logger.Error("failed to open ledger", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	n, err := st.Prune(cmd.Context(), pruneOlderThan)
	if err != nil {
		logger.Error("prune failed", "error", err)
		os.Exit(1)
	}

	total, _ := st.Count(cmd.Context())
	logger.Info("ledger pruned", "removed", n, "remaining", total, "older_than", pruneOlderThan.String())
	return nil
}
