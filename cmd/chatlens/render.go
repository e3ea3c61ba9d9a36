package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mlindner/chatlens/internal/config"
	"github.com/mlindner/chatlens/internal/filter"
	"github.com/mlindner/chatlens/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func renderCmd() *cobra.Command {
	var theme, mode, outDir, tag, cssPath, table string
	var seed int64
	var wheres []string
	var all bool

	cmd := &cobra.Command{
		Use:   "render <dataset> [conv-id...]",
		Short: "Render conversations as standalone HTML documents",
		Long: `Render one or more conversations to themed HTML files. Ids can be given
directly, or selected with --where filters (one random match by default,
every match with --all).

Modes:
  static      plain HTML/CSS, no script, no annotation layout
  annotation  interactive version with annotation panel and resizable grid

Examples:
  chatlens render data.json conv_0042 --theme dark
  chatlens render data.json --where source=wc --all --mode annotation --out ./html`,
		Args: cobra.MinimumNArgs(1),
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

			convIDs := args[1:]
			if len(convIDs) == 0 {
				criteria, err := parseCriteria(wheres)
				if err != nil {
					return err
				}
				opts := filter.SubsetOptions{All: all, Rand: newRand(seed)}
				convIDs, err = filter.Subset(tbl, cfg.Columns.Conv.ConvID, criteria, opts, log)
				if err != nil {
					return err
				}
				if len(convIDs) == 0 {
					fmt.Fprintln(os.Stderr, "No conversations match filters.")
					return nil
				}
			}

			mode = normalizeMode(mode, log)

			var customCSS string
			if cssPath != "" {
				data, err := os.ReadFile(cssPath)
				if err != nil {
					log.Warnw("could not read custom css; using theme", "path", cssPath, "error", err)
				} else {
					customCSS = string(data)
				}
			}

			if outDir == "" {
				outDir = cfg.OutDir
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			opts := render.ConversationOptions{Theme: theme, CustomCSS: customCSS}

			saved := 0
			for _, convID := range convIDs {
				doc, err := render.Conversation(tbl, convID, cfg.Columns, opts, log)
				if err != nil {
					if errors.Is(err, render.ErrNoContent) {
						log.Warnw("skipping conversation", "conv_id", convID, "error", err)
						continue
					}
					return err
				}

				html := doc.Static
				if mode == "annotation" {
					html = doc.Interactive
				}

				path := filepath.Join(outDir, outputFilename(convID, theme, mode, tag))
				if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				fmt.Println(path)
				saved++
			}

			if saved == 0 {
				fmt.Fprintln(os.Stderr, "No files were saved. See diagnostics above.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "light", "Color theme (light/dark)")
	cmd.Flags().StringVar(&mode, "mode", "static", "Output mode (static/annotation)")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (default from config, else current dir)")
	cmd.Flags().StringVar(&tag, "tag", "", "Extra tag appended to output filenames")
	cmd.Flags().StringVar(&cssPath, "css", "", "Custom stylesheet replacing the built-in theme")
	cmd.Flags().StringVar(&table, "table", "", "Table name when reading a sqlite dataset")
	cmd.Flags().StringArrayVar(&wheres, "where", nil, "Select conversations by column filter (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "Render every conversation matching --where")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the random pick (0 = non-deterministic)")

	return cmd
}

// normalizeMode corrects an invalid output mode to static, with a
// diagnostic, mirroring how themes are handled.
func normalizeMode(mode string, log *zap.SugaredLogger) string {
	m := strings.ToLower(mode)
	if m != "static" && m != "annotation" {
		log.Warnw("invalid mode; using static", "mode", mode)
		m = "static"
	}
	return m
}

// outputFilename builds {id}_{theme}_{mode}[_{tag}].html with every part
// sanitized for the filesystem.
func outputFilename(convID, theme, mode, tag string) string {
	modeTag := "static"
	if mode == "annotation" {
		modeTag = "annot"
	}
	themeTag := "light"
	if strings.ToLower(theme) == "dark" {
		themeTag = "dark"
	}

	parts := []string{sanitizePart(convID), themeTag, modeTag}
	if tag != "" {
		parts = append(parts, sanitizePart(tag))
	}
	return strings.Join(parts, "_") + ".html"
}

func sanitizePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
