// Package profiling adds CPU and heap profiles plus a timing summary to a
// cobra command tree.
package profiling

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/grovetools/wordpad/logging"
	"github.com/spf13/cobra"
)

var log = logging.NewLogger("wordpad-profiling")

// CobraProfiler owns the profiling flags and the files they open.
type CobraProfiler struct {
	cpuProfileFile *os.File
	cpuProfilePath string
	memProfilePath string
	timing         bool
}

// NewCobraProfiler creates a profiler with every feature disabled.
func NewCobraProfiler() *CobraProfiler {
	return &CobraProfiler{}
}

// AddFlags registers --cpu-profile, --mem-profile and --timing as hidden
// persistent flags of cmd.
func (p *CobraProfiler) AddFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&p.cpuProfilePath, "cpu-profile", "", "Write a CPU profile to file")
	flags.StringVar(&p.memProfilePath, "mem-profile", "", "Write a heap profile to file on exit")
	flags.BoolVar(&p.timing, "timing", false, "Print a timing summary on exit")
	for _, name := range []string{"cpu-profile", "mem-profile", "timing"} {
		_ = flags.MarkHidden(name)
	}
}

// Start enables timing and the CPU profile as requested by the flags.
func (p *CobraProfiler) Start() error {
	if p.timing {
		Enable()
	}

	if p.cpuProfilePath != "" {
		f, err := os.Create(p.cpuProfilePath)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		p.cpuProfileFile = f
	}
	return nil
}

// Stop writes the profiles and prints the timing summary to w.
func (p *CobraProfiler) Stop(w io.Writer) {
	if p.cpuProfileFile != nil {
		pprof.StopCPUProfile()
		p.cpuProfileFile.Close()
		p.cpuProfileFile = nil
		log.WithField("path", p.cpuProfilePath).Info("CPU profile written")
	}

	if p.memProfilePath != "" {
		if err := writeHeapProfile(p.memProfilePath); err != nil {
			log.WithError(err).Warn("Could not write heap profile")
		} else {
			log.WithField("path", p.memProfilePath).Info("Heap profile written")
		}
	}

	if p.timing {
		Summarize(w)
	}
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	runtime.GC()
	return pprof.WriteHeapProfile(f)
}
