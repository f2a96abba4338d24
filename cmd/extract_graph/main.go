// Command extract_graph reads block-structured reconstruction records from
// a configured source and writes one reco-graph CSV row per event.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bdtaunu/graphtruth/cmd/internal/cliutil"
	"github.com/bdtaunu/graphtruth/runner"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "extract_graph [CONFIG]",
		Short:         "Extract reconstruction-level decay graphs to CSV",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cliutil.Register(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var configPath string
		if len(args) == 1 {
			configPath = args[0]
		}

		return run(cmd.Context(), flags, configPath)
	}

	return cmd
}

func run(ctx context.Context, flags *cliutil.Flags, configPath string) error {
	cfg, err := flags.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, err := cliutil.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	particles, err := cliutil.LoadParticleTable(cfg.ParticleTablePath)
	if err != nil {
		return err
	}

	src, err := runner.OpenSource(ctx, cfg, runner.GraphExtractionInputFields())
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := cliutil.CreateOutput(cfg.Output.CSVPath)
	if err != nil {
		return err
	}
	defer out.Close()

	var examineReco io.Writer
	if cfg.Examine && cfg.Output.RecoGraphPath != "" {
		f, err := cliutil.CreateOutput(cfg.Output.RecoGraphPath)
		if err != nil {
			return err
		}
		defer f.Close()
		examineReco = f
	}

	r := runner.New(logger, particles)

	stats, err := r.RunGraphExtraction(ctx, src, out, examineReco)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "processed=%d skipped=%d\n", stats.Processed, stats.Skipped)

	return nil
}
