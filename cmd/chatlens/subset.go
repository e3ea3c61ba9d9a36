package main

import (
	"fmt"
	"os"

	"github.com/mlindner/chatlens/internal/config"
	"github.com/mlindner/chatlens/internal/filter"
	"github.com/spf13/cobra"
)

func subsetCmd() *cobra.Command {
	var all bool
	var seed int64
	var wheres []string
	var table string

	cmd := &cobra.Command{
		Use:   "subset <dataset>",
		Short: "Pick conversation ids matching metadata filters",
		Long: `Filter the conversation table by column criteria and print matching ids,
one per line. Without --all, one id is chosen uniformly at random; pass
--seed for a reproducible pick.

Examples:
  chatlens subset data.json --where source=wc --where n_code=0
  chatlens subset data.json --all --where turns=5..
  chatlens subset data.db --table conversations --where n_toxic=1..3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := newLogger()
			defer log.Sync()

			tbl, err := loadDataset(args[0], table, log)
			if err != nil {
				return err
			}

			criteria, err := parseCriteria(wheres)
			if err != nil {
				return err
			}

			opts := filter.SubsetOptions{All: all, Rand: newRand(seed)}
			ids, err := filter.Subset(tbl, cfg.Columns.Conv.ConvID, criteria, opts, log)
			if err != nil {
				return err
			}

			if len(ids) == 0 {
				fmt.Fprintln(os.Stderr, "No conversations match filters.")
				return nil
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Print every matching id instead of one random pick")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the random pick (0 = non-deterministic)")
	cmd.Flags().StringArrayVar(&wheres, "where", nil, "Column filter, repeatable (column=value)")
	cmd.Flags().StringVar(&table, "table", "", "Table name when reading a sqlite dataset")

	return cmd
}
