package permission

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single permission query process
const DefaultTimeout = 10 * time.Second

// CommandFunc builds the process that prints the permission string of path
type CommandFunc func(ctx context.Context, path string, format string) *exec.Cmd

// StatQuerier runs GNU stat (or an equivalent built by Command) and reads the
// first line of its standard output.
type StatQuerier struct {
	// Command of nil means LocalStatCommand
	Command CommandFunc
	// Timeout of zero means DefaultTimeout
	Timeout time.Duration
}

// NewStatQuerier returns a StatQuerier running the local "stat -c" binary
func NewStatQuerier() *StatQuerier {
	return &StatQuerier{Command: LocalStatCommand}
}

// LocalStatCommand is "stat -c <format> -- <path>", with no shell in between
func LocalStatCommand(ctx context.Context, path string, format string) *exec.Cmd {
	return exec.CommandContext(ctx, "stat", "-c", format, "--", path)
}

// StatFormat returns the stat(1) format directive for the requested representation
func StatFormat(numeric bool) string {
	if numeric {
		return "%a"
	}
	return "%A"
}

func (q *StatQuerier) QueryPermissionString(path string, numeric bool) (string, error) {
	timeout := q.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	command := q.Command
	if command == nil {
		command = LocalStatCommand
	}
	cmd := command(ctx, path, StatFormat(numeric))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("permission query for %s timed out after %v", path, timeout)
		}
		return "", fmt.Errorf("permission query for %s failed: %w (%s)", path, err,
			strings.TrimSpace(stderr.String()))
	}
	line, err := bufio.NewReader(&stdout).ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("permission query for %s printed nothing: %v", path, err)
	}
	return line, nil
}
