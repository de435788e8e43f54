package remote

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// SSHArgs builds the connection arguments for the system ssh binary.
func SSHArgs(loc Location, explicitKeyPath string) []string {
	args := make([]string, 0, 10)
	if loc.User != "" {
		args = append(args, "-l", loc.User)
	}
	if loc.Port != 0 {
		args = append(args, "-p", strconv.Itoa(loc.Port))
	}
	if explicitKeyPath != "" {
		args = append(args, "-i", explicitKeyPath)
	}
	// Never prompt: the inspector is non-interactive
	args = append(args, "-o", "BatchMode=yes")
	return args
}

// SSHCommand creates an exec.Cmd running remoteCmd on the host through a remote shell.
func SSHCommand(ctx context.Context, loc Location, explicitKeyPath string, remoteCmd string) *exec.Cmd {
	args := SSHArgs(loc, explicitKeyPath)
	args = append(args, "-T", loc.Host, remoteCmd)
	return exec.CommandContext(ctx, "ssh", args...)
}

// SSHSubsystemCommand creates an exec.Cmd that invokes an SSH subsystem (e.g. sftp).
func SSHSubsystemCommand(loc Location, explicitKeyPath string, subsystem string) *exec.Cmd {
	args := SSHArgs(loc, explicitKeyPath)
	args = append(args, "-s", loc.Host, subsystem)
	return exec.Command("ssh", args...)
}

// ShellQuote wraps s in single quotes for a POSIX shell.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// StatCommand returns a permission.CommandFunc-compatible builder running
// "stat -c <format> -- <path>" on the remote host.
func StatCommand(loc Location, explicitKeyPath string) func(ctx context.Context, path string, format string) *exec.Cmd {
	return func(ctx context.Context, path string, format string) *exec.Cmd {
		remoteCmd := "stat -c " + ShellQuote(format) + " -- " + ShellQuote(path)
		return SSHCommand(ctx, loc, explicitKeyPath, remoteCmd)
	}
}
