//go:build windows

package supervisor

import "os"

func terminate(process *os.Process) error {
	return process.Kill()
}
