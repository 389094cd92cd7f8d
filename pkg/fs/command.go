package fs

import "os/exec"

// Which finds the executable path for a command using the system's PATH.
func (f *realFS) Which(command string) (string, error) {
	return exec.LookPath(command)
}

// ExecuteCommand starts a command and returns without waiting for it to finish.
// Editors launched this way keep running after the CLI exits.
func (f *realFS) ExecuteCommand(command string, args ...string) error {
	cmd := exec.Command(command, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
