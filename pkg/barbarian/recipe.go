package barbarian

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bfgroup/barbarian/pkg/conan"
)

// Recipe is a Conan recipe in a barbarian repository, identified by a fully
// resolved reference.
type Recipe struct {
	// Dir is the absolute path of the directory containing the
	// conanfile.py. It is empty for recipes that are only known by their
	// reference.
	Dir string
	Ref conan.Ref

	repo *Repository
}

// NewRecipe resolves the passed reference to a Recipe.
// Name and version that the reference omits are read from the conanfile in
// recipeDir via conan inspect. recipeDir can be empty, then the reference
// must contain name and version.
func NewRecipe(ctx context.Context, repo *Repository, recipeDir, reference string) (*Recipe, error) {
	ref, err := conan.ParseRef(reference)
	if err != nil {
		return nil, err
	}

	recipe := Recipe{
		repo: repo,
		Ref:  *ref,
	}

	if recipeDir != "" {
		recipe.Dir, err = filepath.Abs(recipeDir)
		if err != nil {
			return nil, err
		}
	}

	if (ref.Name == "" || ref.Version == "") && recipe.Dir != "" {
		name, version, err := conan.Inspect(ctx, recipe.Dir, repo.Path)
		if err != nil {
			return nil, fmt.Errorf("inspecting recipe in %q failed: %w", recipe.Dir, err)
		}

		if recipe.Ref.Name == "" {
			recipe.Ref.Name = name
		}
		if recipe.Ref.Version == "" {
			recipe.Ref.Version = version
		}
	}

	if err := recipe.Ref.Validate(); err != nil {
		return nil, fmt.Errorf("resolving reference %q failed: %w", reference, err)
	}

	return &recipe, nil
}

// String returns the recipe reference.
func (r *Recipe) String() string {
	return r.Ref.String()
}

// DataDir is the directory in the repository-local Conan cache that holds all
// exported data of the recipe name and version, for all user/channel pairs.
func (r *Recipe) DataDir() string {
	return filepath.Join(r.repo.CacheDir(), "data", r.Ref.Name, r.Ref.Version)
}

// ExportDir is the directory that conan export writes the recipe data to.
func (r *Recipe) ExportDir() string {
	return filepath.Join(r.DataDir(), r.Ref.User, r.Ref.Channel)
}

// ExportedFilesDir is the directory below ExportDir containing the exported
// recipe files (conanfile.py, conanmanifest.txt, optionally conandata.yml).
func (r *Recipe) ExportedFilesDir() string {
	return filepath.Join(r.ExportDir(), "export")
}

// PublishDir is the directory in the upload worktree that holds the published
// revisions of the recipe.
func (r *Recipe) PublishDir() string {
	return filepath.Join(r.repo.Path, UploadWorktreeDir, r.Ref.Name, r.Ref.Version)
}

// RevisionDir is the directory below PublishDir that holds the published data
// of a single recipe revision.
func (r *Recipe) RevisionDir(revision string) string {
	return filepath.Join(r.PublishDir(), revision)
}
