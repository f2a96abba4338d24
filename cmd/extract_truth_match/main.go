// Command extract_truth_match reads already-assembled MC/reco graphs and
// detector-level final-state seeds from a configured source, computes the
// truth matching for each event, and writes one CSV row per event.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bdtaunu/graphtruth/cmd/internal/cliutil"
	"github.com/bdtaunu/graphtruth/config"
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
		Use:           "extract_truth_match [CONFIG]",
		Short:         "Match reconstruction-level decay graphs against simulated truth",
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

	src, err := runner.OpenSource(ctx, cfg, runner.TruthMatchInputFields())
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := cliutil.CreateOutput(cfg.Output.CSVPath)
	if err != nil {
		return err
	}
	defer out.Close()

	examine, closeExamine, err := openExamineWriters(cfg)
	if err != nil {
		return err
	}
	defer closeExamine()

	r := runner.New(logger, particles)

	stats, err := r.RunTruthMatchExtraction(ctx, src, out, examine)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "processed=%d skipped=%d matched_y=%d\n", stats.Processed, stats.Skipped, stats.MatchedY)

	return nil
}

// openExamineWriters opens whichever of the four --examine sinks were
// configured, returning nil for the whole set if --examine was not passed.
// The returned close func closes every file it actually opened, in order,
// collapsing their errors into the first non-nil one.
func openExamineWriters(cfg *config.Config) (*runner.ExamineWriters, func() error, error) {
	if !cfg.Examine {
		return nil, func() error { return nil }, nil
	}

	var opened []*os.File
	closeAll := func() error {
		var first error
		for _, f := range opened {
			if err := f.Close(); err != nil && first == nil {
				first = err
			}
		}

		return first
	}

	open := func(path string) (*os.File, error) {
		if path == "" {
			return nil, nil
		}
		f, err := cliutil.CreateOutput(path)
		if err != nil {
			return nil, err
		}
		opened = append(opened, f)

		return f, nil
	}

	mc, err := open(cfg.Output.MCGraphPath)
	if err != nil {
		closeAll()

		return nil, func() error { return nil }, err
	}
	pruned, err := open(cfg.Output.PrunedMCGraphPath)
	if err != nil {
		closeAll()

		return nil, func() error { return nil }, err
	}
	reco, err := open(cfg.Output.RecoGraphPath)
	if err != nil {
		closeAll()

		return nil, func() error { return nil }, err
	}
	tm, err := open(cfg.Output.TruthMatchGraphPath)
	if err != nil {
		closeAll()

		return nil, func() error { return nil }, err
	}

	w := &runner.ExamineWriters{}
	if mc != nil {
		w.MCGraph = mc
	}
	if pruned != nil {
		w.PrunedMCGraph = pruned
	}
	if reco != nil {
		w.Reco = reco
	}
	if tm != nil {
		w.TruthMatch = tm
	}

	return w, closeAll, nil
}
