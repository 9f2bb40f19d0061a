package exec

// Result describes the result of a run Cmd.
type Result struct {
	Command  string
	Dir      string
	ExitCode int
	success  bool

	stdout []byte
	stderr []byte
}

// ExpectSuccess returns an ExitCodeError if the command did not execute
// successfully (exit code != 0).
func (r *Result) ExpectSuccess() error {
	if !r.success {
		return &ExitCodeError{Result: r}
	}

	return nil
}

// Stdout returns the standard output of the command.
func (r *Result) Stdout() []byte {
	return r.stdout
}

// Stderr returns the standard error output of the command.
func (r *Result) Stderr() []byte {
	return r.stderr
}

// ResultOut is a Result with the interleaved stdout and stderr output of the
// command.
type ResultOut struct {
	*Result
	CombinedOutput []byte
}

// StrOutput returns the combined output as string.
func (r *ResultOut) StrOutput() string {
	return string(r.CombinedOutput)
}
