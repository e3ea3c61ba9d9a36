package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mlindner/chatlens/internal/config"
	"github.com/mlindner/chatlens/internal/filter"
	"github.com/mlindner/chatlens/internal/turns"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	styleConvID = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func searchCmd() *cobra.Command {
	var regex, ignoreCase, all bool
	var seed int64
	var wheres []string
	var table string

	cmd := &cobra.Command{
		Use:   "search <dataset> <text>",
		Short: "Search message text across all turns",
		Long: `Unpack the nested turns and search their message text. The pattern is
matched literally unless --regex is set. Additional --where filters apply
to turn-level columns (for example role=user).

Examples:
  chatlens search data.json "Python" --where role=assistant
  chatlens search data.json "^Hello" --regex --all`,
		Args: cobra.ExactArgs(2),
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

			flat, err := turns.Unpack(tbl, cfg.Columns, log)
			if err != nil {
				return err
			}

			criteria, err := parseCriteria(wheres)
			if err != nil {
				return err
			}

			cols := filter.SearchColumns{
				ConvID:     cfg.Columns.Turn.ConvID,
				Message:    cfg.Columns.Turn.Message,
				TurnNumber: cfg.Columns.Turn.TurnNumber,
			}
			opts := filter.SearchOptions{
				CaseSensitive: !ignoreCase,
				Regex:         regex,
				All:           all,
				Rand:          newRand(seed),
			}

			ids, match, err := filter.SearchText(flat, args[1], cols, criteria, opts, log)
			if err != nil {
				return err
			}

			if len(ids) == 0 && match == nil {
				fmt.Fprintln(os.Stderr, "No matches found.")
				return nil
			}

			styled := term.IsTerminal(int(os.Stdout.Fd()))
			if all {
				for _, id := range ids {
					fmt.Println(id)
				}
				return nil
			}

			nums := make([]string, len(match.TurnNums))
			for i, n := range match.TurnNums {
				nums[i] = fmt.Sprint(n)
			}
			if styled {
				fmt.Printf("%s %s\n", styleConvID.Render(match.ConvID),
					styleDim.Render("turns: "+strings.Join(nums, ", ")))
			} else {
				fmt.Printf("%s\t%s\n", match.ConvID, strings.Join(nums, ","))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&regex, "regex", false, "Treat the pattern as a regular expression")
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "Case-insensitive matching")
	cmd.Flags().BoolVar(&all, "all", false, "Print every matching conversation id")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the random pick (0 = non-deterministic)")
	cmd.Flags().StringArrayVar(&wheres, "where", nil, "Turn-level filter, repeatable (column=value)")
	cmd.Flags().StringVar(&table, "table", "", "Table name when reading a sqlite dataset")

	return cmd
}
