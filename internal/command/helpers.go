package command

import (
	"github.com/bfgroup/barbarian/internal/log"
	"github.com/bfgroup/barbarian/internal/vcs/git"
	"github.com/bfgroup/barbarian/pkg/barbarian"
	"github.com/bfgroup/barbarian/pkg/conan"
)

// mustHaveGitInstalled terminates the application when no git executable is
// found in $PATH.
func mustHaveGitInstalled() {
	if !git.CommandIsInstalled() {
		stderr.Printf("git was not found in $PATH, please install it\n")
		exitFunc(exitCodeError)
	}
}

// mustHaveConanInstalled terminates the application when no conan executable
// is found in $PATH.
// When debug output is enabled the conan client version is logged.
func mustHaveConanInstalled() {
	if !conan.CommandIsInstalled() {
		stderr.Printf("conan was not found in $PATH, please install it\n")
		exitFunc(exitCodeError)
	}

	if log.DebugEnabled() {
		ver, err := conan.ClientVersion(ctx)
		if err != nil {
			log.Debugf("determining conan client version failed: %s", err)
			return
		}

		log.Debugf("conan client version: %s", ver)
	}
}

// mustFindRepository locates the repository root, starting from the current
// working directory.
// If it fails, an error is printed and the application terminates.
func mustFindRepository() *barbarian.Repository {
	log.Debugln("searching for repository root...")

	repo, err := barbarian.FindRepositoryCwd()
	exitOnErr(err)

	log.Debugf("repository root found: %s", repo.Path)

	return repo
}

// exitOnErrf is like exitOnErr but accepts a format string as prefix.
func exitOnErrf(err error, format string, v ...any) {
	if err == nil {
		return
	}

	stderr.ErrPrintf(err, format, v...)
	exitFunc(exitCodeError)
}

// exitOnErr prints the error with an optional message prefix and terminates
// the application with exitCodeError.
// If err is nil, it does nothing.
func exitOnErr(err error, msg ...any) {
	if err == nil {
		return
	}

	stderr.ErrPrintln(err, msg...)
	exitFunc(exitCodeError)
}
