package main

import (
	"fmt"

	"github.com/mlindner/chatlens/internal/config"
	"github.com/mlindner/chatlens/internal/dataset"
	"github.com/mlindner/chatlens/internal/turns"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func doctorCmd() *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "doctor <dataset>",
		Short: "Self-check: verify columns, turn decoding, and show stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			// decode diagnostics stay quiet here; counts tell the story
			log := zap.NewNop().Sugar()

			tbl, err := loadDataset(args[0], table, log)
			if err != nil {
				return err
			}

			fmt.Println("=== Dataset ===")
			fmt.Printf("  Path: %s\n", args[0])
			fmt.Printf("  Conversations: %d\n", tbl.Len())

			fmt.Println("\n=== Conversation Columns ===")
			checkColumn(tbl, "conv_id", cfg.Columns.Conv.ConvID)
			checkColumn(tbl, "conversation", cfg.Columns.Conv.Conversation)
			checkColumn(tbl, "source", cfg.Columns.Conv.Source)
			checkColumn(tbl, "model", cfg.Columns.Conv.Model)
			checkColumn(tbl, "turns", cfg.Columns.Conv.Turns)
			checkColumn(tbl, "start", cfg.Columns.Conv.Start)
			checkColumn(tbl, "end", cfg.Columns.Conv.End)
			checkColumn(tbl, "language", cfg.Columns.Conv.Language)

			fmt.Println("\n=== Turn Decoding ===")
			decoded, failed := 0, 0
			totalTurns := 0
			for _, row := range tbl.Rows {
				records, err := turns.Decode(row[cfg.Columns.Conv.Conversation], cfg.Columns.Turn)
				if err != nil {
					failed++
					continue
				}
				decoded++
				totalTurns += len(records)
			}
			fmt.Printf("  Decoded: %d\n", decoded)
			fmt.Printf("  Failed:  %d\n", failed)
			fmt.Printf("  Turns:   %d\n", totalTurns)

			return nil
		},
	}

	cmd.Flags().StringVar(&table, "table", "", "Table name when reading a sqlite dataset")

	return cmd
}

func checkColumn(tbl *dataset.Table, role, name string) {
	status := "MISSING"
	if tbl.HasColumn(name) {
		status = "ok"
	}
	fmt.Printf("  %-14s %-16s %s\n", role, name, status)
}
