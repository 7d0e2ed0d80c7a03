package cli

import (
	"fmt"

	"github.com/born-ml/gradtape/internal/autodiff"
	"github.com/born-ml/gradtape/internal/backend/scalar"
	"github.com/spf13/cobra"
	"github.com/x448/float16"
)

func newScalarCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "scalar",
		Short: "Differentiate l = (a + b) * b on float64 scalars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd, cfg)
			tape := autodiff.NewTape[float64](scalar.New[float64](), autodiff.WithMetrics(s.metrics))
			result, err := composite(tape, cfg.A, cfg.B, identity[float64])
			if err != nil {
				return err
			}
			return s.finish(fmt.Sprintf("%s, a=%g b=%g", tape.Backend().Name(), cfg.A, cfg.B), result, 0)
		},
	}
}

func newHalfCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "half",
		Short: "Differentiate l = (a + b) * b in half precision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd, cfg)
			tape := autodiff.NewTape[float16.Float16](scalar.NewHalf(), autodiff.WithMetrics(s.metrics))
			a := float16.Fromfloat32(float32(cfg.A))
			b := float16.Fromfloat32(float32(cfg.B))
			result, err := composite(tape, a, b, identity[float16.Float16])
			if err != nil {
				return err
			}
			title := fmt.Sprintf("%s, a=%s b=%s", tape.Backend().Name(), tape.Backend().Format(a), tape.Backend().Format(b))
			return s.finish(title, result, 0)
		},
	}
}
