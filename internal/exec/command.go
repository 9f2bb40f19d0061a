// Package exec runs external commands.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var (
	// DefaultLogFn is the default function via that executed commands and
	// their output are logged.
	DefaultLogFn = func(string, ...any) {}
	// DefaultLogPrefix is the default prefix that is prepended to messages
	// passed to the log function.
	DefaultLogPrefix = "exec: "
)

// Cmd represents a command that can be run.
type Cmd struct {
	name string
	args []string
	dir  string
	env  []string

	logFn         func(format string, v ...any)
	logPrefix     string
	expectSuccess bool
}

// Command creates a new Cmd.
// If name contains no path separators, the name is resolved to a complete
// path via the directories listed in the PATH environment variable.
// By default the command is run in the current working directory.
func Command(name string, arg ...string) *Cmd {
	return &Cmd{
		name:      name,
		args:      arg,
		logFn:     DefaultLogFn,
		logPrefix: DefaultLogPrefix,
	}
}

// Directory changes the directory in which the command is executed.
func (c *Cmd) Directory(dir string) *Cmd {
	c.dir = dir
	return c
}

// Env defines the environment variables of the process.
// Each element is in the format KEY=VALUE.
// If it is unset, the environment of the current process is inherited.
func (c *Cmd) Env(env []string) *Cmd {
	c.env = env
	return c
}

// LogPrefix sets a prefix that is prepended to every logged message.
func (c *Cmd) LogPrefix(prefix string) *Cmd {
	c.logPrefix = prefix
	return c
}

// LogFn sets the function via that the executed command and its output are
// logged.
func (c *Cmd) LogFn(fn func(format string, v ...any)) *Cmd {
	c.logFn = fn
	return c
}

// ExpectSuccess when set, Run() returns an error if the command did not exit
// with code 0.
func (c *Cmd) ExpectSuccess() *Cmd {
	c.expectSuccess = true
	return c
}

func (c *Cmd) execCmd(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Dir = c.dir
	cmd.Env = c.env

	return cmd
}

func (c *Cmd) run(ctx context.Context, combineOutputs bool) (*Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := c.execCmd(ctx)
	cmd.Stdout = &stdout
	if combineOutputs {
		cmd.Stderr = &stdout
	} else {
		cmd.Stderr = &stderr
	}

	c.logFn(c.logPrefix+"running %q in directory %q\n", cmdString(cmd), logDir(cmd.Dir))

	err := cmd.Run()
	exitCode, err := exitCodeFromErr(err)
	if err != nil {
		return nil, fmt.Errorf("executing %q failed: %w", cmdString(cmd), err)
	}

	c.logFn(c.logPrefix+"command terminated with exitCode: %d\n", exitCode)
	if out := stdout.Bytes(); len(out) > 0 {
		c.logFn(c.logPrefix+"%s\n", out)
	}
	if out := stderr.Bytes(); len(out) > 0 {
		c.logFn(c.logPrefix+"%s\n", out)
	}

	result := Result{
		Command:  cmdString(cmd),
		Dir:      logDir(cmd.Dir),
		ExitCode: exitCode,
		success:  exitCode == 0,
		stdout:   stdout.Bytes(),
		stderr:   stderr.Bytes(),
	}

	if c.expectSuccess && !result.success {
		return nil, &ExitCodeError{Result: &result}
	}

	return &result, nil
}

// Run executes the command and waits until it terminated.
// Only if the command could not be started or was interrupted an error is
// returned.
func (c *Cmd) Run(ctx context.Context) (*Result, error) {
	return c.run(ctx, false)
}

// RunCombinedOut executes the command and returns its interleaved stdout and
// stderr output.
func (c *Cmd) RunCombinedOut(ctx context.Context) (*ResultOut, error) {
	result, err := c.run(ctx, true)
	if err != nil {
		return nil, err
	}

	return &ResultOut{Result: result, CombinedOutput: result.stdout}, nil
}

func cmdString(cmd *exec.Cmd) string {
	// cmd.Args[0] contains the command name, cmd.Path the absolute command
	// path, omit cmd.Args[0] from the string
	if len(cmd.Args) > 1 {
		return fmt.Sprintf("%s %v", cmd.Path, strings.Join(cmd.Args[1:], " "))
	}

	return cmd.Path
}

func logDir(dir string) string {
	if dir == "" {
		return "."
	}

	return dir
}

func exitCodeFromErr(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), nil
	}

	return 0, err
}
