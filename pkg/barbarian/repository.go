package barbarian

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bfgroup/barbarian/internal/fs"
	"github.com/bfgroup/barbarian/internal/vcs/git"
	"github.com/bfgroup/barbarian/pkg/cfg"
)

// RepositoryCfgFile is the name of the optional repository configuration
// file.
const RepositoryCfgFile = ".barbarian.toml"

// Repository represents a barbarian repository, a git repository containing
// Conan recipes.
type Repository struct {
	// Path is the root directory of the git repository.
	Path string
	// CfgPath is the path of the configuration file, empty if the
	// repository has none.
	CfgPath string
	Cfg     *cfg.Repository
}

// FindRepository searches for the repository root, starting in dir and
// traversing its parent directories.
// The root is the first directory that contains a .git directory.
// If the repository contains a configuration file it is loaded, otherwise
// defaults are used.
func FindRepository(dir string) (*Repository, error) {
	root, err := git.FindRepositoryRoot(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not find a git repository in %q or any of its parent directories", dir)
		}

		return nil, err
	}

	repo := Repository{
		Path: root,
		Cfg:  cfg.ExampleRepository(),
	}

	cfgPath := filepath.Join(root, RepositoryCfgFile)
	if !fs.FileExists(cfgPath) {
		return &repo, nil
	}

	repoCfg, err := cfg.RepositoryFromFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("reading repository config %q failed: %w", cfgPath, err)
	}

	if err := repoCfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating repository config %q failed: %w", cfgPath, err)
	}

	repo.CfgPath = cfgPath
	repo.Cfg = repoCfg

	return &repo, nil
}

// FindRepositoryCwd works like FindRepository, the search starts in the
// current working directory.
func FindRepositoryCwd() (*Repository, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return FindRepository(cwd)
}

// CacheDir returns the repository-local Conan cache directory.
func (r *Repository) CacheDir() string {
	return filepath.Join(r.Path, ConanCacheDir)
}

// GitIgnoreEntry is the entry that EnsureCacheIsGitIgnored adds to the
// .gitignore file.
const GitIgnoreEntry = "/" + ConanCacheDir + "/"

// EnsureCacheIsGitIgnored adds the Conan cache directory to the repository's
// .gitignore file.
// The file is created if it does not exist, an existing entry is not
// duplicated.
func (r *Repository) EnsureCacheIsGitIgnored() error {
	gitignorePath := filepath.Join(r.Path, ".gitignore")

	content, err := os.ReadFile(gitignorePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == GitIgnoreEntry {
			return nil
		}
	}

	content = append([]byte(GitIgnoreEntry+"\n"), content...)

	return os.WriteFile(gitignorePath, content, 0644)
}
