package telemetry

import (
	"flag"
	"strconv"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Verbosity levels used by the tape.
const (
	// TraceLevel logs one "<id> = <expr>" line per node creation.
	TraceLevel klog.Level = 2
	// DumpLevel additionally logs the full gradient table of every reverse pass.
	DumpLevel klog.Level = 3
)

// Tracef logs a node trace line at TraceLevel.
func Tracef(format string, args ...any) {
	klog.V(TraceLevel).Infof(format, args...)
}

// Dumpf logs reverse-pass details at DumpLevel.
func Dumpf(format string, args ...any) {
	klog.V(DumpLevel).Infof(format, args...)
}

// TraceEnabled reports whether trace lines are emitted.
func TraceEnabled() bool {
	return klog.V(TraceLevel).Enabled()
}

// InitFlags registers klog's flags on fs (a new FlagSet when fs is nil) and returns it.
func InitFlags(fs *flag.FlagSet) *flag.FlagSet {
	if fs == nil {
		fs = flag.NewFlagSet("klog", flag.ContinueOnError)
	}
	klog.InitFlags(fs)
	return fs
}

// SetVerbosity sets klog's -v flag on a FlagSet previously passed to InitFlags.
func SetVerbosity(fs *flag.FlagSet, level klog.Level) error {
	if err := fs.Set("v", strconv.Itoa(int(level))); err != nil {
		return errors.Wrap(err, "setting klog verbosity")
	}
	return nil
}

// DumpEnabled reports whether reverse-pass details are emitted.
func DumpEnabled() bool {
	return klog.V(DumpLevel).Enabled()
}
