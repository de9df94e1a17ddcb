// Package process manages the lifetime of external tools started by md2dox.
package process

import "os/exec"

// Bind puts cmd in its own process group and makes context cancellation
// kill the whole group, so helpers spawned by the tool (dot, latex) do not
// outlive it. cmd must come from exec.CommandContext.
func Bind(cmd *exec.Cmd) {
	isolate(cmd)
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		KillProcessGroup(cmd.Process.Pid)
		return nil
	}
}
