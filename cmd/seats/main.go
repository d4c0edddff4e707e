package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seat-finder/internal/batch"
	"seat-finder/internal/boardingpass"
	"seat-finder/internal/config"
	"seat-finder/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "seats",
		Short:         "Decode boarding passes into seat ids",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "seats.yaml", "Path to the YAML config file")

	root.AddCommand(newDecodeCmd(&configPath), newEncodeCmd(), newConfigCmd(&configPath))
	return root
}

func newDecodeCmd(configPath *string) *cobra.Command {
	var (
		inputFile   string
		outputFile  string
		workers     int
		skipInvalid bool
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a file of boarding passes and report the highest and free seat",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				cfg.Decode.Workers = workers
			}
			if cmd.Flags().Changed("skip-invalid") {
				cfg.Decode.SkipInvalid = skipInvalid
			}

			logger, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			defer logger.Sync()

			return runDecode(cmd.Context(), cmd, logger, cfg.Decode, inputFile, outputFile)
		},
	}

	cmd.Flags().StringVar(&inputFile, "input", "", "File containing one boarding pass per line (required)")
	cmd.Flags().StringVar(&outputFile, "output", "", "Write decoded seat ids to this file")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of parallel decoders (0 = one per CPU)")
	cmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Skip malformed passes instead of failing")
	cmd.MarkFlagRequired("input")

	return cmd
}

func runDecode(ctx context.Context, cmd *cobra.Command, logger *zap.Logger, opts config.DecodeConfig, inputFile, outputFile string) error {
	// Track start time for elapsed time reporting
	programStart := time.Now()

	// Progress callback that shows elapsed time
	progress := logging.Progress(logger)
	progressCallback := func(msg string) {
		progress(fmt.Sprintf("[%s] %s", formatElapsed(time.Since(programStart)), msg))
	}

	codes, err := batch.LoadFile(inputFile)
	if err != nil {
		return err
	}
	progressCallback(fmt.Sprintf("Loaded %d passes from %s", len(codes), inputFile))

	report, err := batch.DecodeAll(ctx, codes, batch.Options{
		Workers:     opts.Workers,
		SkipInvalid: opts.SkipInvalid,
		Progress:    progressCallback,
	})
	if err != nil {
		return err
	}

	for _, rej := range report.Rejected {
		logger.Warn("skipped pass", zap.Int("line", rej.Line), zap.String("code", rej.Code), zap.Error(rej.Err))
	}

	ids := report.IDs()
	if outputFile != "" {
		progressCallback("Writing output file...")
		if err := batch.WriteTextFile(ids, outputFile); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Passes decoded: %d\n", len(report.Passes))
	fmt.Fprintf(out, "Passes rejected: %d\n", len(report.Rejected))
	if lowest, ok := batch.MinID(ids); ok {
		fmt.Fprintf(out, "Lowest seat id: %d\n", lowest)
	} else {
		fmt.Fprintln(out, "Lowest seat id: none")
	}
	if highest, ok := batch.MaxID(ids); ok {
		fmt.Fprintf(out, "Highest seat id: %d\n", highest)
	} else {
		fmt.Fprintln(out, "Highest seat id: none")
	}
	if free, ok := batch.FreeSeat(ids); ok {
		fmt.Fprintf(out, "Free seat id: %d\n", free)
	} else {
		fmt.Fprintln(out, "Free seat id: none")
	}

	return nil
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode ROW COLUMN",
		Short: "Print the boarding pass for a seat",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row %q: %w", args[0], err)
			}
			col, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid column %q: %w", args[1], err)
			}

			code, err := boardingpass.Format(row, col)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), code)
			return nil
		},
	}
}

func newConfigCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the seats config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the --config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if *configPath == "" {
				return fmt.Errorf("--config must name a file")
			}
			if _, err := os.Stat(*configPath); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", *configPath)
			}

			cfg, err := config.Load("")
			if err != nil {
				return err
			}
			if err := cfg.Save(*configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", *configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
