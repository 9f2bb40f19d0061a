package cfg

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	// Version identifies the format of the configuration file that the
	// package can parse. Whenever an incompatible change is made, the
	// Version number is increased.
	Version int = 1

	// DefaultUploadBranch is the git branch that the Barbarian server
	// serves recipe data from.
	DefaultUploadBranch = "barbarian"
	// DefaultUploadRemote is the git remote that the upload branch is
	// pushed to.
	DefaultUploadRemote = "origin"
)

// DefaultConanRemotes are the Conan remotes that generated CI workflows are
// configured with.
var DefaultConanRemotes = []string{
	"https://barbarian.bfgroup.xyz/@barbarian",
	"https://bincrafters.jfrog.io/artifactory/api/conan/public-conan@bincrafters",
}

// Repository contains the repository configuration.
// All settings are optional, a repository without a configuration file uses
// the defaults.
type Repository struct {
	ConfigVersion int `toml:"config_version"`

	Upload   Upload
	Discover Discover
	CI       CI

	filePath string
}

// Upload contains the settings of the publish target.
type Upload struct {
	// Branch is the orphan git branch that recipe revisions are committed
	// to.
	Branch string `toml:"branch"`
	// Remote is the git remote that Branch is pushed to.
	Remote string `toml:"remote"`
}

// Discover stores the [Discover] section of the repository configuration.
type Discover struct {
	// RecipeDirs are glob patterns, relative to the repository root, that
	// are matched against directories containing a conanfile.py.
	RecipeDirs []string `toml:"recipe_dirs"`
}

// CI stores settings for generated CI workflows.
type CI struct {
	ConanRemotes []string `toml:"conan_remotes"`
}

// ExampleRepository returns an exemplary Repository config.
func ExampleRepository() *Repository {
	return &Repository{
		ConfigVersion: Version,

		Upload: Upload{
			Branch: DefaultUploadBranch,
			Remote: DefaultUploadRemote,
		},

		Discover: Discover{
			RecipeDirs: []string{"recipes/*"},
		},

		CI: CI{
			ConanRemotes: DefaultConanRemotes,
		},
	}
}

// RepositoryFromFile reads the repository config from a file and returns it.
// Unset fields are populated with defaults.
func RepositoryFromFile(cfgPath string) (*Repository, error) {
	config := Repository{}

	content, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}

	err = toml.Unmarshal(content, &config)
	if err != nil {
		return nil, err
	}

	config.filePath = cfgPath
	config.applyDefaults()

	return &config, nil
}

func (r *Repository) applyDefaults() {
	if r.Upload.Branch == "" {
		r.Upload.Branch = DefaultUploadBranch
	}
	if r.Upload.Remote == "" {
		r.Upload.Remote = DefaultUploadRemote
	}
	if len(r.Discover.RecipeDirs) == 0 {
		r.Discover.RecipeDirs = []string{"recipes/*"}
	}
	if len(r.CI.ConanRemotes) == 0 {
		r.CI.ConanRemotes = DefaultConanRemotes
	}
}

// ToFile writes a Repository configuration file to filepath.
func (r *Repository) ToFile(filepath string, opts ...toFileOpt) error {
	return toFile(r, filepath, opts...)
}

// FilePath returns the path of the file that the configuration was read from.
// It is empty for configurations that were not loaded via
// RepositoryFromFile.
func (r *Repository) FilePath() string {
	return r.filePath
}

// Validate validates a repository configuration.
func (r *Repository) Validate() error {
	if r.ConfigVersion == 0 {
		return newFieldError("can not be unset or 0", "config_version")
	}
	if r.ConfigVersion != Version {
		return fmt.Errorf("incompatible configuration file\n"+
			"config_version value is %d, expecting version: %d\n"+
			"Update your barbarian configuration file or downgrade barbarian.", r.ConfigVersion, Version)
	}

	if err := r.Upload.validate(); err != nil {
		return fieldErrorWrap(err, "Upload")
	}

	if err := r.Discover.validate(); err != nil {
		return fieldErrorWrap(err, "Discover")
	}

	return nil
}

func (u *Upload) validate() error {
	if u.Branch == "" {
		return newFieldError("can not be empty", "branch")
	}
	if u.Remote == "" {
		return newFieldError("can not be empty", "remote")
	}

	return nil
}

func (d *Discover) validate() error {
	for _, dir := range d.RecipeDirs {
		if dir == "" {
			return newFieldError("can not contain empty elements", "recipe_dirs")
		}
	}

	return nil
}
