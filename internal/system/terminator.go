package system

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/rileyhilliard/systop/internal/errors"
	"github.com/rileyhilliard/systop/internal/logger"
)

// Terminator sends a kill signal to a process by PID.
type Terminator interface {
	Terminate(ctx context.Context, pid int32) error
}

// KillTerminator delivers SIGKILL through gopsutil. The UI treats the
// call as fire-and-forget; the outcome shows up in the process table on
// the next refresh.
type KillTerminator struct {
	log logger.Logger
}

// NewKillTerminator returns the OS-backed Terminator used in production.
func NewKillTerminator() *KillTerminator {
	return &KillTerminator{log: logger.Default()}
}

// Terminate sends SIGKILL to pid. Failures (no such process, permission
// denied) are wrapped but never fatal to the caller.
func (k *KillTerminator) Terminate(ctx context.Context, pid int32) error {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		k.log.Warn("kill %d: process lookup failed: %v", pid, err)
		return errors.WrapWithCode(err, errors.ErrSignal,
			fmt.Sprintf("Failed to find process %d", pid),
			"It may have already exited")
	}

	if err := p.KillWithContext(ctx); err != nil {
		k.log.Warn("kill %d failed: %v", pid, err)
		return errors.WrapWithCode(err, errors.ErrSignal,
			fmt.Sprintf("Failed to kill process %d", pid),
			"Check that you have permission to signal it")
	}

	k.log.Debug("sent SIGKILL to pid %d", pid)
	return nil
}
