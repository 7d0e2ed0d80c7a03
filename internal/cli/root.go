package cli

import (
	"flag"
	"fmt"

	"github.com/born-ml/gradtape/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the gradtape command with all subcommands attached.
func NewRootCmd(version string) *cobra.Command {
	cfg := DefaultConfig()
	klogFlags := telemetry.InitFlags(flag.NewFlagSet("klog", flag.ContinueOnError))

	cmd := &cobra.Command{
		Use:           "gradtape",
		Short:         "Reverse-mode automatic differentiation demos",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Trace {
				return telemetry.SetVerbosity(klogFlags, telemetry.DumpLevel)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.Float64VarP(&cfg.A, "input-a", "a", cfg.A, "Value of input a")
	flags.Float64VarP(&cfg.B, "input-b", "b", cfg.B, "Value of input b")
	flags.BoolVar(&cfg.Trace, "trace", cfg.Trace, "Log every node and reverse pass")
	flags.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "Print Prometheus metrics at exit")
	flags.AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		newScalarCmd(&cfg),
		newTensorCmd(&cfg),
		newHalfCmd(&cfg),
		newVersionCmd(version),
	)
	return cmd
}

// session holds what a demo subcommand needs besides its tape.
type session struct {
	out      *Output
	registry *prometheus.Registry
	metrics  *telemetry.Metrics
}

func newSession(cmd *cobra.Command, cfg *Config) *session {
	s := &session{out: NewOutput(cmd.OutOrStdout())}
	if cfg.Metrics {
		s.registry = prometheus.NewRegistry()
		s.metrics = telemetry.NewMetrics(s.registry)
	}
	return s
}

// finish prints the demo results and, when enabled, the metrics.
func (s *session) finish(title string, result *demoResult, payloadBytes uint64) error {
	s.out.Title(title)
	s.out.Gradients("l", result.Rows)
	s.out.Stats(result, payloadBytes)
	if s.registry == nil {
		return nil
	}
	s.out.Title("Metrics")
	return s.out.Metrics(s.registry)
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gradtape %s\n", version)
			return err
		},
	}
}
