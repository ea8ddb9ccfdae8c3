//go:build linux

package cmd

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// countInstructions runs f under a hardware CPU-instruction counter and
// reports the count. Needs perf_event_open permission.
func countInstructions(f func() error) error {
	pv, err := perf.CPUInstructions(f)
	if err != nil {
		return err
	}
	fmt.Printf("CPU instructions: %d (enabled %dns, running %dns)\n",
		pv.Value, pv.TimeEnabled, pv.TimeRunning)
	return nil
}
