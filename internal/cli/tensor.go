package cli

import (
	"fmt"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/backend/cpu"
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/spf13/cobra"
)

func newTensorCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tensor",
		Short: "Differentiate sum((a + b) * b) on float64 tensors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			shape := tensor.Shape(cfg.Shape)
			a, err := tensor.Full(shape, cfg.A)
			if err != nil {
				return err
			}
			b, err := tensor.Full(shape, cfg.B)
			if err != nil {
				return err
			}

			s := newSession(cmd, cfg)
			tape := autodiff.NewTape[*tensor.RawTensor](cpu.New(), autodiff.WithMetrics(s.metrics))
			result, err := composite(tape, a, b, func(n *autodiff.Node[*tensor.RawTensor], name string) *autodiff.Node[*tensor.RawTensor] {
				return autodiff.Sum(tape, n, name)
			})
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s, shape=%s a=%g b=%g", tape.Backend().Name(), shape, cfg.A, cfg.B)
			return s.finish(title, result, uint64(len(result.Rows))*uint64(a.ByteSize()))
		},
	}
	cmd.Flags().IntSliceVar(&cfg.Shape, "shape", cfg.Shape, "Shape of the input tensors")
	return cmd
}
