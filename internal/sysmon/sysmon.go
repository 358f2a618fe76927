// Package sysmon provides system-wide CPU and memory usage sampling for
// the TUI header.
package sysmon

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	Load1      float64 // 1-minute load average (0 where unsupported)
	NumCPU     int
}

// Sample collects a single system-wide resource snapshot.
// CPU uses interval=0 (delta since last call). Fields whose collection
// fails are left at zero rather than failing the whole sample.
func Sample() Stats {
	s := Stats{NumCPU: runtime.NumCPU()}

	if cpuPcts, err := cpu.Percent(0, false); err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	if avg, err := load.Avg(); err == nil && avg != nil {
		s.Load1 = avg.Load1
	}
	return s
}

// String renders the snapshot as a compact single-line status, e.g.
// "cpu 12.3% | mem 41.0% | load 0.52 (8 cores)".
func (s Stats) String() string {
	return fmt.Sprintf("cpu %.1f%% | mem %.1f%% | load %.2f (%d cores)",
		s.CPUPercent, s.MemPercent, s.Load1, s.NumCPU)
}
