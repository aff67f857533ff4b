// Package racadm runs the Dell RACADM command-line tool against an iDRAC.
package racadm

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var ErrCommandFailed = errors.New("racadm command failed")

// CommandExecutor runs a binary and returns its combined output.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, arg ...string) ([]byte, error)
}

// ExecCommandExecutor runs commands with os/exec.
type ExecCommandExecutor struct{}

func (ExecCommandExecutor) Execute(ctx context.Context, name string, arg ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, arg...).CombinedOutput()
}

// Tool wraps the racadm binary.
type Tool struct {
	path     string
	executor CommandExecutor
}

// New returns a Tool using the racadm binary at path.
func New(path string, executor CommandExecutor) *Tool {
	if executor == nil {
		executor = ExecCommandExecutor{}
	}

	return &Tool{path: path, executor: executor}
}

// RunCommand executes a racadm subcommand such as "get bios.SysSecurity.SecureBoot" on host.
func (t *Tool) RunCommand(ctx context.Context, host, user, password, command string) (string, error) {
	args := append([]string{"-r", host, "-u", user, "-p", password}, strings.Fields(command)...)

	out, err := t.executor.Execute(ctx, t.path, args...)
	output := string(out)

	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrCommandFailed, command, strings.TrimSpace(output))
	}

	if strings.Contains(output, "ERROR") {
		return "", fmt.Errorf("%w: %s: %s", ErrCommandFailed, command, strings.TrimSpace(output))
	}

	return output, nil
}
