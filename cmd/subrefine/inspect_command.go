package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subrefine/internal/refine"
	"subrefine/internal/srt"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var withRefined bool

	cmd := &cobra.Command{
		Use:   "inspect <input.srt>",
		Short: "Report threshold violations in an SRT document",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("provide the path to the SRT document. Example: subrefine inspect /path/to/video.srt")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.TrimSpace(args[0])
			if source == "" {
				return fmt.Errorf("source file path is required")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			engine, err := refine.New(cfg.RefineOptions(), nil)
			if err != nil {
				return fmt.Errorf("configure engine: %w", err)
			}

			cues, err := srt.ParseFile(source)
			if err != nil {
				return err
			}

			before := engine.Survey(cues)

			headers := []string{"Metric", "Input"}
			var after refine.Stats
			if withRefined {
				after = engine.Survey(engine.Refine(cues))
				headers = append(headers, "Refined")
			}

			rows := statsRows(before, after, withRefined)
			fmt.Fprintln(cmd.OutOrStdout(), renderStatsTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&withRefined, "refined", false, "Also run the refinement passes and report the result")

	return cmd
}

func statsRows(before, after refine.Stats, withRefined bool) [][]string {
	metrics := []struct {
		label  string
		before int
		after  int
	}{
		{"Cues", before.Cues, after.Cues},
		{"Duration violations", before.DurationViolations, after.DurationViolations},
		{"Reading-speed violations", before.CPSViolations, after.CPSViolations},
		{"Gap violations", before.GapViolations, after.GapViolations},
		{"Line-count violations", before.LineCountViolations, after.LineCountViolations},
		{"Overlong lines", before.OverlongLines, after.OverlongLines},
	}
	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		row := []string{m.label, strconv.Itoa(m.before)}
		if withRefined {
			row = append(row, strconv.Itoa(m.after))
		}
		rows = append(rows, row)
	}
	return rows
}
