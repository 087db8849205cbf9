//go:build !windows

package supervisor

import (
	"os"
	"syscall"
)

func terminate(process *os.Process) error {
	return process.Signal(syscall.SIGTERM)
}
