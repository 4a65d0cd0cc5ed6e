package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"subrefine/internal/logging"
	"subrefine/internal/refine"
	"subrefine/internal/srt"
)

func newRefineCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var toStdout bool
	var overwrite bool
	var maxCPS float64
	var minDuration float64
	var maxLineChars int
	var maxBlockChars int
	var gapFrames int
	var frameRate float64

	cmd := &cobra.Command{
		Use:   "refine <input.srt>",
		Short: "Refine an SRT document against timing and readability thresholds",
		Long: `Refine merges cues that violate duration, reading-speed, or gap
thresholds into their neighbors where sentence boundaries allow it, shifts
cues apart to keep a minimum silent gap, and reflows cue text into bounded
lines. Word content is never changed.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("provide the path to the SRT document. Example: subrefine refine /path/to/video.srt")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.TrimSpace(args[0])
			if source == "" {
				return fmt.Errorf("source file path is required")
			}
			source, _ = filepath.Abs(source)
			info, err := os.Stat(source)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source file %q not found", source)
				}
				return fmt.Errorf("stat source: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source path %q is a directory", source)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			opts := cfg.RefineOptions()
			flags := cmd.Flags()
			if flags.Changed("max-cps") {
				opts.MaxCPS = maxCPS
			}
			if flags.Changed("min-duration") {
				opts.MinDuration = minDuration
			}
			if flags.Changed("max-line-chars") {
				opts.MaxLineChars = maxLineChars
				// A derived block budget follows the overridden line length;
				// a pinned one stands. Zeroing lets the engine re-derive.
				if !flags.Changed("max-block-chars") && cfg.Refine.MaxBlockChars == 2*cfg.Refine.MaxLineChars {
					opts.MaxBlockChars = 0
				}
			}
			if flags.Changed("max-block-chars") {
				opts.MaxBlockChars = maxBlockChars
			}
			if flags.Changed("gap-frames") {
				opts.GapFrames = gapFrames
			}
			if flags.Changed("frame-rate") {
				opts.FrameRate = frameRate
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}
			logger = logger.With(
				logging.String(logging.FieldRunID, uuid.NewString()),
				logging.String(logging.FieldDocument, filepath.Base(source)),
			)

			engine, err := refine.New(opts, logger)
			if err != nil {
				return fmt.Errorf("configure engine: %w", err)
			}

			cues, err := srt.ParseFile(source)
			if err != nil {
				return err
			}

			refined := engine.Refine(cues)

			if toStdout {
				_, err := cmd.OutOrStdout().Write(srt.Serialize(refined))
				return err
			}

			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = deriveOutputPath(source, cfg.Output.Suffix)
			}
			if !overwrite && !cfg.Output.Overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("output file %s already exists (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check output path: %w", err)
				}
			}
			if err := srt.WriteFile(target, refined); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Refined %d cues into %d, wrote %s\n", len(cues), len(refined), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination path for the refined document")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the refined document to stdout instead of a file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite the destination if it exists")
	cmd.Flags().Float64Var(&maxCPS, "max-cps", 0, "Reading-speed ceiling in characters per second")
	cmd.Flags().Float64Var(&minDuration, "min-duration", 0, "Minimum cue display time in seconds")
	cmd.Flags().IntVar(&maxLineChars, "max-line-chars", 0, "Maximum characters per display line")
	cmd.Flags().IntVar(&maxBlockChars, "max-block-chars", 0, "Character budget for a merged cue")
	cmd.Flags().IntVar(&gapFrames, "gap-frames", 0, "Minimum inter-cue gap in video frames")
	cmd.Flags().Float64Var(&frameRate, "frame-rate", 0, "Frame rate used to derive the gap duration")

	return cmd
}

// deriveOutputPath inserts the configured suffix before the extension:
// movie.srt -> movie.refined.srt
func deriveOutputPath(source, suffix string) string {
	ext := filepath.Ext(source)
	return strings.TrimSuffix(source, ext) + suffix + ext
}
