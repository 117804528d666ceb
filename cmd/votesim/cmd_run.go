package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/votesim/report"
	"github.com/katalvlaran/votesim/simulation"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return newPipelineCmd(opts, simulation.PipelineAll, &cobra.Command{
		Use:   "run",
		Short: "Generate an electorate and run every resolver",
		Long: `Generate an electorate and report the plurality baseline, the
Instant-Runoff outcome and the strategic voting outcome.

Examples:
  votesim run
  votesim run --voters 200 --candidates 6 --seed 7
  votesim run --graph complete --semantics batched --format json`,
	})
}

func newIRVCmd(opts *rootOptions) *cobra.Command {
	return newPipelineCmd(opts, simulation.PipelineIRV, &cobra.Command{
		Use:   "irv",
		Short: "Generate an electorate and resolve it by Instant-Runoff",
	})
}

func newStrategicCmd(opts *rootOptions) *cobra.Command {
	return newPipelineCmd(opts, simulation.PipelineStrategic, &cobra.Command{
		Use:   "strategic",
		Short: "Generate an electorate and simulate strategic voting",
	})
}

func newPipelineCmd(opts *rootOptions, pipelines simulation.Pipeline, cmd *cobra.Command) *cobra.Command {
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, opts)
		if err != nil {
			return err
		}

		out, err := simulation.Run(cmd.Context(), cfg, newLogger(cmd, cfg), pipelines)
		if err != nil {
			return err
		}

		return report.Write(cmd.OutOrStdout(), out, opts.Format)
	}

	return cmd
}
