package command

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/bfgroup/barbarian/internal/command/term"
	"github.com/bfgroup/barbarian/internal/exec"
	"github.com/bfgroup/barbarian/internal/log"
	"github.com/bfgroup/barbarian/internal/testutils/logwriter"
)

type exitInfo struct {
	Code int
}

func (e *exitInfo) String() string {
	return fmt.Sprintf("program terminated with exit code: %d", e.Code)
}

// chdir changes the current working dir to dir.
// It registers a t.Cleanup function to change the working directory back to
// the previous one.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get current working directory: %s", err)
	}
	t.Cleanup(func() {
		err := os.Chdir(oldDir)
		if err != nil {
			t.Fatalf("could not change back to previous working dir: %q: %s", oldDir, err)
		}
	})

	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing working directory to %q failed: %s", dir, err)
	}
}

// initTest changes exitFunc to panic instead of calling os.Exit() and
// redirects the command output and the exec debug function to the test
// logger.
func initTest(t *testing.T) {
	t.Helper()

	exitFunc = func(code int) {
		panic(&exitInfo{Code: code})
	}

	redirectOutputToLogger(t)
}

func redirectOutputToLogger(t *testing.T) {
	log.RedirectToTestingLog(t)

	oldExecLogFn := exec.DefaultLogFn
	exec.DefaultLogFn = t.Logf

	oldStdout := stdout
	stdout = term.NewStream(logwriter.New(t, io.Discard))
	oldStderr := stderr
	stderr = term.NewStream(logwriter.New(t, io.Discard))

	t.Cleanup(func() {
		exec.DefaultLogFn = oldExecLogFn
		stdout = oldStdout
		stderr = oldStderr
	})
}

// interceptCmdOutput changes the stdout and stderr streams so that command
// output is written to the returned buffers, all output is additionally
// logged via the test logger.
func interceptCmdOutput(t *testing.T) (stdoutBuf, stderrBuf *bytes.Buffer) {
	var bufStdout bytes.Buffer
	var bufStderr bytes.Buffer

	oldStdout := stdout
	stdout = term.NewStream(logwriter.New(t, &bufStdout))
	oldStderr := stderr
	stderr = term.NewStream(logwriter.New(t, &bufStderr))

	t.Cleanup(func() {
		stdout = oldStdout
		stderr = oldStderr
	})

	return &bufStdout, &bufStderr
}

// execCheck runs fn and asserts that it terminates the program with the
// given exit code.
func execCheck(t *testing.T, expectedExitCode int, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected exit with code %d, command returned normally", expectedExitCode)
		}

		info, ok := r.(*exitInfo)
		if !ok {
			panic(r)
		}

		if info.Code != expectedExitCode {
			t.Fatalf("expected exit code %d, got %d", expectedExitCode, info.Code)
		}
	}()

	fn()
}
