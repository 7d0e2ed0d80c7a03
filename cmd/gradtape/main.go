// Package main provides the gradtape CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/gradtape/internal/cli"
	"k8s.io/klog/v2"
)

// version is set via ldflags at build time.
var version = "dev"

func main() {
	defer klog.Flush()

	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		klog.Flush()
		os.Exit(1)
	}
}
