package cli

import (
	"github.com/born-ml/gradtape/internal/tensor"
	"github.com/pkg/errors"
)

// Config holds the flags shared by the demo subcommands.
type Config struct {
	// A and B are the values of the input nodes.
	A, B float64

	// Shape of the tensor demo inputs.
	Shape []int

	// Trace raises klog verbosity so that the tape logs nodes and reverse passes.
	Trace bool

	// Metrics prints the collected Prometheus metrics after the demo.
	Metrics bool
}

// DefaultConfig returns the configuration of the reference example: a=2, b=3.
func DefaultConfig() Config {
	return Config{
		A:     2,
		B:     3,
		Shape: []int{2, 3},
	}
}

// Validate checks the tensor shape.
func (c Config) Validate() error {
	if err := tensor.Shape(c.Shape).Validate(); err != nil {
		return errors.WithMessage(err, "invalid --shape")
	}
	return nil
}
