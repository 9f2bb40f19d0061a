package exec

import (
	"fmt"
	"strings"
)

// ExitCodeError is returned from Run() when a command exited with a code != 0.
type ExitCodeError struct {
	*Result
}

// Error returns the error description.
func (e *ExitCodeError) Error() string {
	var result strings.Builder
	var stdoutExists bool

	fmt.Fprintf(&result, "running %q in directory %q exited with code %d, expected 0",
		e.Command, e.Dir, e.ExitCode)

	if len(e.stdout) == 0 && len(e.stderr) == 0 {
		return result.String()
	}

	result.WriteString(", output:\n")

	if len(e.stdout) > 0 {
		result.WriteString("### stdout ###\n")
		result.WriteString(strings.TrimSpace(string(e.stdout)))
		result.WriteRune('\n')
		stdoutExists = true
	}

	if len(e.stderr) > 0 {
		if stdoutExists {
			result.WriteRune('\n')
		}
		result.WriteString("### stderr ###\n")
		result.WriteString(strings.TrimSpace(string(e.stderr)))
		result.WriteRune('\n')
	}

	return result.String()
}
