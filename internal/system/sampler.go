package system

import (
	"context"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/rileyhilliard/systop/internal/errors"
)

// Sampler produces one full system snapshot per call. The Refresher treats
// it as effectively infallible: a failed call skips the cycle, except for
// the very first sample at startup which is fatal (there is no state to
// show).
type Sampler interface {
	Sample(ctx context.Context) (*Snapshot, error)
}

// GopsutilSampler reads host state through gopsutil.
type GopsutilSampler struct{}

// NewGopsutilSampler returns the OS-backed Sampler used in production.
func NewGopsutilSampler() *GopsutilSampler {
	return &GopsutilSampler{}
}

// Sample collects per-core CPU usage, memory totals, host identification,
// and the process table in a single pass.
//
// Per-process reads race with process exit, so any process that fails to
// report is skipped rather than failing the whole snapshot.
func (g *GopsutilSampler) Sample(ctx context.Context) (*Snapshot, error) {
	perCore, err := cpu.PercentWithContext(ctx, 0, true)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read per-core CPU usage")
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read memory statistics")
	}

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read host information")
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list processes")
	}

	snap := &Snapshot{
		PerCoreCPU:       perCore,
		MemoryTotalBytes: vm.Total,
		MemoryUsedBytes:  vm.Used,
		Host: HostInfo{
			Hostname:      info.Hostname,
			Kernel:        info.KernelVersion,
			OS:            info.Platform + " " + info.PlatformVersion,
			UptimeSeconds: info.Uptime,
		},
		Processes: make([]Process, 0, len(procs)),
	}

	for _, p := range procs {
		if p == nil || p.Pid <= 0 {
			continue
		}

		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}

		cpuPct, err := p.CPUPercentWithContext(ctx)
		if err != nil {
			continue
		}

		memInfo, err := p.MemoryInfoWithContext(ctx)
		if err != nil || memInfo == nil {
			continue
		}

		memPct := 0.0
		if vm.Total > 0 {
			memPct = float64(memInfo.RSS) / float64(vm.Total) * 100
		}

		snap.Processes = append(snap.Processes, Process{
			PID:           p.Pid,
			Name:          name,
			CPUPercent:    cpuPct,
			MemoryBytes:   memInfo.RSS,
			MemoryPercent: memPct,
		})
	}

	return snap, nil
}
