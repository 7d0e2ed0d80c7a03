// Package telemetry holds the logging levels and Prometheus collectors shared by the
// autodiff tape and the command line driver.
package telemetry
