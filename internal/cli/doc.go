// Package cli implements the gradtape command line driver.
//
// # Overview
//
// Every demo subcommand builds the composite expression l = (a + b) * b on a fresh
// tape, prints the first-order gradients of l, then differentiates l2 = da * db to
// print second-order gradients computed through the recorded backward rules.
//
//   - scalar: float64 values
//   - tensor: float64 tensors of --shape filled with a and b, reduced with Sum
//   - half: IEEE 754 half-precision values
//   - version: prints the build version
//
// # Output
//
// Headers and gradient tables are rendered with lipgloss; tape statistics use
// go-humanize. With --trace the engine logs each node and reverse pass through klog,
// and with --metrics the Prometheus collectors of the run are printed at exit.
package cli
